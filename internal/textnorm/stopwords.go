package textnorm

import "strings"

// stopWords is the fixed English + Portuguese stop-word set. Entries are
// pre-normalized the same way tokens are: lower-cased, unaccented, and
// punctuation-free, so the lookup happens after the cleaning steps.
var stopWords = buildStopWordSet(englishStopWords, portugueseStopWords)

func isStopWord(token string) bool {
	return stopWords[token]
}

func buildStopWordSet(lists ...string) map[string]bool {
	set := make(map[string]bool, 400)
	for _, list := range lists {
		for _, w := range strings.Fields(list) {
			set[w] = true
		}
	}
	return set
}

const englishStopWords = `
i me my myself we our ours ourselves you youre youve youll youd your yours
yourself yourselves he him his himself she shes her hers herself it its
itself they them their theirs themselves what which who whom this that
thatll these those am is are was were be been being have has had having do
does did doing a an the and but if or because as until while of at by for
with about against between into through during before after above below to
from up down in out on off over under again further then once here there
when where why how all any both each few more most other some such no nor
not only own same so than too very s t can will just don dont should
shouldve now d ll m o re ve y ain aren arent couldn couldnt didn didnt
doesn doesnt hadn hadnt hasn hasnt haven havent isn isnt ma mightn mightnt
mustn mustnt needn neednt shan shant shouldn shouldnt wasn wasnt weren
werent won wont wouldn wouldnt
`

const portugueseStopWords = `
de a o que e do da em um para e com nao uma os no se na por mais as dos
como mas foi ao ele das tem a seu sua ou ser quando muito ha nos ja esta
eu tambem so pelo pela ate isso ela entre era depois sem mesmo aos ter
seus quem nas me esse eles estao voce tinha foram essa num nem suas meu as
minha tem numa pelos elas havia seja qual sera nos tenho lhe deles essas
esses pelas este fosse dele tu te voces vos lhes meus minhas teu tua teus
tuas nosso nossa nossos nossas dela delas esta estes estas aquele aquela
aqueles aquelas isto aquilo estou estamos estive esteve estivemos estiveram
estava estavamos estavam estivera estiveramos esteja estejamos estejam
estivesse estivessemos estivessem estiver estivermos estiverem hei hao
houve houvemos houveram houvera houveramos haja hajamos hajam houvesse
houvessemos houvessem houver houvermos houverem houverei houvera houveremos
houverao houveria houveriamos houveriam sou somos sao fomos fora foramos
seja sejamos sejam fosse fossemos fossem for formos forem serei sera
seremos serao seria seriamos seriam tenho tem temos tinhamos tinham tive
teve tivemos tiveram tivera tiveramos tenha tenhamos tenham tivesse
tivessemos tivessem tiver tivermos tiverem terei tera teremos terao teria
teriamos teriam
`
