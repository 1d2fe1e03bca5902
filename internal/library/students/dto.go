package students

const dateLayout = "2006-01-02"

// StudentRequest is the body of POST /novo/aluno and PUT /atualizar/aluno/:idAluno.
type StudentRequest struct {
	RA             string `json:"ra" binding:"notblank,max=20" example:"123"`
	Nome           string `json:"nome" binding:"notblank,max=80" example:"Ana"`
	Sobrenome      string `json:"sobrenome" binding:"notblank,max=80" example:"Silva"`
	DataNascimento string `json:"dataNascimento" binding:"required,datetime=2006-01-02" example:"2000-01-01"`
	Endereco       string `json:"endereco" binding:"max=200" example:"Rua A"`
	Email          string `json:"email" binding:"omitempty,email,max=80" example:"a@a.com"`
	Celular        string `json:"celular" binding:"max=20" example:"11999999999"`
}

type StudentResponse struct {
	IDAluno        int64  `json:"idAluno" example:"1"`
	RA             string `json:"ra" example:"123"`
	Nome           string `json:"nome" example:"Ana"`
	Sobrenome      string `json:"sobrenome" example:"Silva"`
	DataNascimento string `json:"dataNascimento" example:"2000-01-01"`
	Endereco       string `json:"endereco" example:"Rua A"`
	Email          string `json:"email" example:"a@a.com"`
	Celular        string `json:"celular" example:"11999999999"`
}

func toResponse(s Student) StudentResponse {
	return StudentResponse{
		IDAluno:        s.ID,
		RA:             s.RA,
		Nome:           s.Nome,
		Sobrenome:      s.Sobrenome,
		DataNascimento: s.DataNascimento.Format(dateLayout),
		Endereco:       s.Endereco,
		Email:          s.Email,
		Celular:        s.Celular,
	}
}
