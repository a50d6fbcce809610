package classify

// QuestionExample pairs a curated example question with the categories it
// asks for. The bank is read-only at runtime.
type QuestionExample struct {
	Text       string
	Categories []Category
}

// questionBank is the curated fuzzy-match bank: single-category examples
// for each tag, compound examples carrying two categories, and generic
// examples that defer to the keyword patterns.
var questionBank = []QuestionExample{
	// Direction
	{"Quem é o diretor de Iron Man?", []Category{CategoryDiretor}},
	{"Quem dirigiu The Avengers?", []Category{CategoryDiretor}},
	{"De quem foi a direção de The Dark Knight?", []Category{CategoryDiretor}},
	{"Qual o nome do diretor de Logan?", []Category{CategoryDiretor}},
	{"Quem fez a direção de Joker?", []Category{CategoryDiretor}},
	{"Diretor do filme Black Panther?", []Category{CategoryDiretor}},
	{"Quem está creditado como diretor em Alita: Battle Angel?", []Category{CategoryDiretor}},
	{"Quem realizou a direção de Guardians of the Galaxy?", []Category{CategoryDiretor}},
	{"Nome do diretor responsável por The Batman?", []Category{CategoryDiretor}},
	{"Quem comandou a direção de Scott Pilgrim vs. the World?", []Category{CategoryDiretor}},
	{"Quem assina a direção de Man of Steel?", []Category{CategoryDiretor}},
	{"Direção de Deadpool?", []Category{CategoryDiretor}},
	{"Quem esteve à frente da direção de Warcraft?", []Category{CategoryDiretor}},
	{"Quem dirigiu o filme X-Men?", []Category{CategoryDiretor}},
	{"Quem ficou responsável pela direção de Shazam!?", []Category{CategoryDiretor}},

	// Cast
	{"Quem são os atores principais de The Avengers?", []Category{CategoryAtor}},
	{"Qual o elenco de Guardians of the Galaxy?", []Category{CategoryAtor}},
	{"Quem atua em The Dark Knight?", []Category{CategoryAtor}},
	{"Atores principais de Suicide Squad (2016)?", []Category{CategoryAtor}},
	{"Quem está no elenco de Justice League?", []Category{CategoryAtor}},
	{"Protagonistas de Men in Black?", []Category{CategoryAtor}},
	{"Quem são os atores de X-Men?", []Category{CategoryAtor}},
	{"Elenco principal de The Batman?", []Category{CategoryAtor}},
	{"Quem faz o papel principal em Deadpool?", []Category{CategoryAtor}},
	{"Atores que participam de Black Panther?", []Category{CategoryAtor}},
	{"Quem está no elenco de The Incredibles (vozes originais)?", []Category{CategoryAtor}},
	{"Protagonistas de Shang-Chi and the Legend of the Ten Rings?", []Category{CategoryAtor}},
	{"Quem atua em Doctor Strange?", []Category{CategoryAtor}},
	{"Atores principais de Aquaman?", []Category{CategoryAtor}},
	{"Quem faz parte do elenco de Alita: Battle Angel?", []Category{CategoryAtor}},

	// Genre
	{"Qual o gênero do filme Logan?", []Category{CategoryGenero}},
	{"Que tipo de filme é The Mask?", []Category{CategoryGenero}},
	{"Gênero cinematográfico de Joker?", []Category{CategoryGenero}},
	{"Classificação por gênero de Scott Pilgrim vs. the World?", []Category{CategoryGenero}},
	{"Que estilo de filme é Blade?", []Category{CategoryGenero}},
	{"Gênero predominante em The Avengers?", []Category{CategoryGenero}},
	{"Tipo de filme: Shazam!?", []Category{CategoryGenero}},
	{"Qual a categoria de The Incredibles?", []Category{CategoryGenero}},
	{"Gênero principal de Doctor Strange?", []Category{CategoryGenero}},
	{"Que tipo de produção é Alita: Battle Angel?", []Category{CategoryGenero}},
	{"Classificação por gênero de The New Mutants?", []Category{CategoryGenero}},
	{"Gênero cinematográfico de Ready Player One?", []Category{CategoryGenero}},
	{"Que estilo de filme é Deadpool?", []Category{CategoryGenero}},
	{"Gênero de The Batman?", []Category{CategoryGenero}},
	{"Tipo de produção de Big Hero 6?", []Category{CategoryGenero}},

	// Year
	{"Em que ano foi lançado The Dark Knight?", []Category{CategoryAno}},
	{"Ano de lançamento de Iron Man?", []Category{CategoryAno}},
	{"Quando estreou The Avengers nos cinemas?", []Category{CategoryAno}},
	{"Data de lançamento de Man of Steel?", []Category{CategoryAno}},
	{"Em que ano saiu Black Panther?", []Category{CategoryAno}},
	{"Ano de produção de X-Men?", []Category{CategoryAno}},
	{"Quando foi lançado Guardians of the Galaxy?", []Category{CategoryAno}},
	{"Em que ano chegou aos cinemas The Batman?", []Category{CategoryAno}},
	{"Ano de estreia de Deadpool?", []Category{CategoryAno}},
	{"Quando foi produzido o primeiro Blade?", []Category{CategoryAno}},
	{"Data de lançamento de Joker?", []Category{CategoryAno}},
	{"Em que ano foi feito The Mask?", []Category{CategoryAno}},
	{"Ano de lançamento de Logan?", []Category{CategoryAno}},
	{"Quando estreou Scott Pilgrim vs. the World?", []Category{CategoryAno}},
	{"Em que ano foi lançado Alita: Battle Angel?", []Category{CategoryAno}},

	// Compound questions
	{"Quem dirigiu e qual o ator principal de Iron Man?", []Category{CategoryDiretor, CategoryAtor}},
	{"Qual o gênero e ano de lançamento de The Dark Knight?", []Category{CategoryGenero, CategoryAno}},
	{"Diretor e ano de Logan?", []Category{CategoryDiretor, CategoryAno}},
	{"Atores e gênero de Guardians of the Galaxy?", []Category{CategoryAtor, CategoryGenero}},
	{"Me fale sobre o diretor e o ano de Joker", []Category{CategoryDiretor, CategoryAno}},
	{"Quem são os atores e qual o gênero de The Batman?", []Category{CategoryAtor, CategoryGenero}},
	{"Ano e diretor de Man of Steel?", []Category{CategoryAno, CategoryDiretor}},
	{"Gênero e atores principais de The Avengers?", []Category{CategoryGenero, CategoryAtor}},
	{"Quem dirigiu e quando foi lançado Black Panther?", []Category{CategoryDiretor, CategoryAno}},
	{"Atores e ano de lançamento de Deadpool?", []Category{CategoryAtor, CategoryAno}},
	{"Diretor e gênero de Doctor Strange?", []Category{CategoryDiretor, CategoryGenero}},
	{"Me informe o ano e os atores de X-Men?", []Category{CategoryAno, CategoryAtor}},
	{"Qual o diretor e o gênero de The Mask?", []Category{CategoryDiretor, CategoryGenero}},
	{"Quando foi lançado e quem são os atores de Men in Black?", []Category{CategoryAno, CategoryAtor}},
	{"Gênero e diretor de Alita: Battle Angel?", []Category{CategoryGenero, CategoryDiretor}},

	// General
	{"Me fale sobre o filme The Avengers", []Category{CategoryGeral}},
	{"Dê-me informações sobre The Dark Knight", []Category{CategoryGeral}},
	{"Conte-me sobre Logan", []Category{CategoryGeral}},
	{"Resumo de Joker", []Category{CategoryGeral}},
	{"Detalhes sobre Black Panther", []Category{CategoryGeral}},
	{"Informações sobre Man of Steel", []Category{CategoryGeral}},
	{"O que sabe sobre Guardians of the Galaxy?", []Category{CategoryGeral}},
	{"Me dê detalhes de Iron Man", []Category{CategoryGeral}},
	{"Fale sobre The Batman", []Category{CategoryGeral}},
	{"Me informe sobre Deadpool", []Category{CategoryGeral}},
	{"Conte-me detalhes de Scott Pilgrim vs. the World", []Category{CategoryGeral}},
	{"Resumo de The Incredibles", []Category{CategoryGeral}},
	{"Dados sobre Alita: Battle Angel", []Category{CategoryGeral}},
	{"O que pode me dizer sobre Men in Black?", []Category{CategoryGeral}},
	{"Informações gerais de X-Men", []Category{CategoryGeral}},
}
