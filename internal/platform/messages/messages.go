package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Resource string

const (
	Student Resource = "aluno"
	Book    Resource = "livro"
	Loan    Resource = "emprestimo"
)

type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpDelete Op = "delete"
	OpUpdate Op = "update"
)

type Outcome string

const (
	// Success is the 200 text of a write operation.
	Success Outcome = "ok"
	// Failed is an expected failure: bad input, missing row or a constraint.
	Failed Outcome = "failed"
	// Unavailable is anything unexpected (driver down, SQL error).
	Unavailable Outcome = "unavailable"
)

const Hello = "hello"

// Key identifies one catalog entry, e.g. "livro.delete.failed".
func Key(r Resource, op Op, o Outcome) string {
	return fmt.Sprintf("%s.%s.%s", r, op, o)
}

var (
	supported = []language.Tag{language.BrazilianPortuguese, language.English}
	matcher   = language.NewMatcher(supported)
	cat       = mustBuild()
)

type noun struct{ singular, capital, plural string }

type verb struct{ infinitive, participle string }

var (
	ptNouns = map[Resource]noun{
		Student: {"aluno", "Aluno", "alunos"},
		Book:    {"livro", "Livro", "livros"},
		Loan:    {"empréstimo", "Empréstimo", "empréstimos"},
	}
	enNouns = map[Resource]noun{
		Student: {"student", "Student", "students"},
		Book:    {"book", "Book", "books"},
		Loan:    {"loan", "Loan", "loans"},
	}
	ptVerbs = map[Op]verb{
		OpCreate: {"cadastrar", "cadastrado"},
		OpDelete: {"remover", "removido"},
		OpUpdate: {"atualizar", "atualizado"},
	}
	enVerbs = map[Op]verb{
		OpCreate: {"register", "registered"},
		OpDelete: {"remove", "removed"},
		OpUpdate: {"update", "updated"},
	}
)

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))
	set := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic(fmt.Sprintf("messages: %s %s: %v", tag, key, err))
		}
	}

	set(language.BrazilianPortuguese, Hello, "Olá, mundo!")
	set(language.English, Hello, "Hello, world!")

	for _, r := range []Resource{Student, Book, Loan} {
		pt, en := ptNouns[r], enNouns[r]

		set(language.BrazilianPortuguese, Key(r, OpList, Failed), "Não foi possível acessar a listagem de "+pt.plural)
		set(language.BrazilianPortuguese, Key(r, OpList, Unavailable), "Não foi possível acessar a listagem de "+pt.plural)
		set(language.English, Key(r, OpList, Failed), "Could not access the list of "+en.plural)
		set(language.English, Key(r, OpList, Unavailable), "Could not access the list of "+en.plural)

		for _, op := range []Op{OpCreate, OpDelete, OpUpdate} {
			pv, ev := ptVerbs[op], enVerbs[op]

			set(language.BrazilianPortuguese, Key(r, op, Success),
				fmt.Sprintf("%s %s com sucesso!", pt.capital, pv.participle))
			set(language.BrazilianPortuguese, Key(r, op, Failed),
				fmt.Sprintf("Erro ao %s o %s. Entre em contato com o administrador do sistema.", pv.infinitive, pt.singular))
			set(language.BrazilianPortuguese, Key(r, op, Unavailable),
				fmt.Sprintf("Não foi possível %s o %s. Entre em contato com o administrador do sistema.", pv.infinitive, pt.singular))

			set(language.English, Key(r, op, Success),
				fmt.Sprintf("%s %s successfully!", en.capital, ev.participle))
			set(language.English, Key(r, op, Failed),
				fmt.Sprintf("Failed to %s the %s. Please contact the system administrator.", ev.infinitive, en.singular))
			set(language.English, Key(r, op, Unavailable),
				fmt.Sprintf("Could not %s the %s. Please contact the system administrator.", ev.infinitive, en.singular))
		}
	}

	// loan delete/update keep the texts existing clients already match on
	set(language.BrazilianPortuguese, Key(Loan, OpDelete, Success), "Emprestimo removido com sucesso!")
	set(language.BrazilianPortuguese, Key(Loan, OpDelete, Failed),
		"Erro ao remover o Emprestimo. Entre em contato com o administrador do sistema.")
	set(language.BrazilianPortuguese, Key(Loan, OpDelete, Unavailable),
		"Não foi possível remover o Emprestimo. Entre em contato com o administrador do sistema.")
	set(language.BrazilianPortuguese, Key(Loan, OpUpdate, Success), "Emprestimo atualizado com sucesso!")
	set(language.BrazilianPortuguese, Key(Loan, OpUpdate, Failed),
		"Erro ao atualizar o emprestimo. Entre em contato com o administrador do sistema.")
	set(language.BrazilianPortuguese, Key(Loan, OpUpdate, Unavailable),
		"Não foi possível atualizar o emprestimo. Entre em contato com o administrador do sistema.")
	return b
}

// Printer answers in pt-BR unless lang explicitly names another supported
// language ("en", "en-US"). Accept-Language is not consulted: clients of the
// API expect the pt-BR texts whatever their browser sends.
func Printer(lang string) *message.Printer {
	tag := language.BrazilianPortuguese
	if t, err := language.Parse(lang); err == nil {
		if _, idx, conf := matcher.Match(t); conf != language.No {
			tag = supported[idx]
		}
	}
	return message.NewPrinter(tag, message.Catalog(cat))
}
