package books

import "time"

type Book struct {
	ID                    int64
	Titulo                string
	Autor                 string
	Editora               string
	AnoPublicacao         time.Time
	ISBN                  string
	QuantTotal            int
	QuantDisponivel       int // 0 <= QuantDisponivel <= QuantTotal
	ValorAquisicao        float64
	StatusLivroEmprestado string
}
