package loans

const dateLayout = "2006-01-02"

type LoanRequest struct {
	IDAluno          int64  `json:"idAluno" binding:"required,gt=0" example:"1"`
	IDLivro          int64  `json:"idLivro" binding:"required,gt=0" example:"1"`
	DataEmprestimo   string `json:"dataEmprestimo" binding:"required,datetime=2006-01-02" example:"2024-03-01"`
	DataDevolucao    string `json:"dataDevolucao" binding:"required,datetime=2006-01-02" example:"2024-03-15"`
	StatusEmprestimo string `json:"statusEmprestimo" binding:"max=20" example:"em andamento"`
}

// LoanResponse carries the loan plus display fields of its student and book.
type LoanResponse struct {
	IDEmprestimo     int64  `json:"idEmprestimo" example:"1"`
	IDAluno          int64  `json:"idAluno" example:"1"`
	IDLivro          int64  `json:"idLivro" example:"1"`
	DataEmprestimo   string `json:"dataEmprestimo" example:"2024-03-01"`
	DataDevolucao    string `json:"dataDevolucao" example:"2024-03-15"`
	StatusEmprestimo string `json:"statusEmprestimo" example:"em andamento"`
	RA               string `json:"ra" example:"123"`
	Nome             string `json:"nome" example:"Ana"`
	Sobrenome        string `json:"sobrenome" example:"Silva"`
	Titulo           string `json:"titulo" example:"Dom Casmurro"`
	Autor            string `json:"autor" example:"Machado de Assis"`
}

func toResponse(d LoanDetail) LoanResponse {
	return LoanResponse{
		IDEmprestimo:     d.ID,
		IDAluno:          d.IDAluno,
		IDLivro:          d.IDLivro,
		DataEmprestimo:   d.DataEmprestimo.Format(dateLayout),
		DataDevolucao:    d.DataDevolucao.Format(dateLayout),
		StatusEmprestimo: d.StatusEmprestimo,
		RA:               d.RA,
		Nome:             d.Nome,
		Sobrenome:        d.Sobrenome,
		Titulo:           d.Titulo,
		Autor:            d.Autor,
	}
}
