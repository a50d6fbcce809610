package classify

import "strings"

// synonymGroup rewrites question phrasings to a canonical category term.
type synonymGroup struct {
	canonical string
	synonyms  []string
}

// synonymGroups is applied in declaration order; when synonym lists
// overlap across groups, the earlier group's replacement wins for any
// substring it already consumed. Entries are unaccented because the
// expansion runs on normalized question text.
var synonymGroups = []synonymGroup{
	{"diretor", []string{
		"dirigiu", "realizador", "criou", "idealizador", "criador",
		"direcao", "diretora", "diretores", "dirigido",
	}},
	{"ator", []string{
		"elenco", "estrela", "protagonista", "atores", "atriz",
	}},
	{"genero", []string{
		"categoria", "tipo", "estilo", "tema", "caracteristica",
		"acao", "aventura", "ficcao cientifica", "fantasia", "terror", "comedia",
	}},
	{"ano", []string{
		"lancamento", "estreia", "data", "quando", "lancou", "lancado",
	}},
}

// ExpandSynonyms substring-replaces every known synonym occurrence with
// its canonical category term. It is applied to the question text before
// the similarity query; the indexed documents are never expanded.
func ExpandSynonyms(text string) string {
	for _, g := range synonymGroups {
		for _, s := range g.synonyms {
			text = strings.ReplaceAll(text, s, g.canonical)
		}
	}
	return text
}
