package books

const dateLayout = "2006-01-02"

type BookRequest struct {
	Titulo                string  `json:"titulo" binding:"notblank,max=200" example:"Dom Casmurro"`
	Autor                 string  `json:"autor" binding:"notblank,max=150" example:"Machado de Assis"`
	Editora               string  `json:"editora" binding:"max=100" example:"Garnier"`
	AnoPublicacao         string  `json:"anoPublicacao" binding:"required,datetime=2006-01-02" example:"1899-01-01"`
	ISBN                  string  `json:"isbn" binding:"max=20" example:"9788535910667"`
	QuantTotal            int     `json:"quantTotal" binding:"gte=0" example:"3"`
	QuantDisponivel       int     `json:"quantDisponivel" binding:"gte=0,ltefield=QuantTotal" example:"3"`
	ValorAquisicao        float64 `json:"valorAquisicao" binding:"gte=0" example:"59.9"`
	StatusLivroEmprestado string  `json:"statusLivroEmprestado" binding:"max=20" example:"disponivel"`
}

type BookResponse struct {
	IDLivro               int64   `json:"idLivro" example:"1"`
	Titulo                string  `json:"titulo"`
	Autor                 string  `json:"autor"`
	Editora               string  `json:"editora"`
	AnoPublicacao         string  `json:"anoPublicacao" example:"1899-01-01"`
	ISBN                  string  `json:"isbn"`
	QuantTotal            int     `json:"quantTotal"`
	QuantDisponivel       int     `json:"quantDisponivel"`
	ValorAquisicao        float64 `json:"valorAquisicao"`
	StatusLivroEmprestado string  `json:"statusLivroEmprestado"`
}

func toResponse(b Book) BookResponse {
	return BookResponse{
		IDLivro:               b.ID,
		Titulo:                b.Titulo,
		Autor:                 b.Autor,
		Editora:               b.Editora,
		AnoPublicacao:         b.AnoPublicacao.Format(dateLayout),
		ISBN:                  b.ISBN,
		QuantTotal:            b.QuantTotal,
		QuantDisponivel:       b.QuantDisponivel,
		ValorAquisicao:        b.ValorAquisicao,
		StatusLivroEmprestado: b.StatusLivroEmprestado,
	}
}
