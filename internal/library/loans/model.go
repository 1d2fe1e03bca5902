package loans

import "time"

// Loan is a row of emprestimo. IDAluno and IDLivro are foreign keys.
type Loan struct {
	ID               int64
	IDAluno          int64
	IDLivro          int64
	DataEmprestimo   time.Time
	DataDevolucao    time.Time
	StatusEmprestimo string
}

// LoanDetail is a loan joined with the student and book it points at.
type LoanDetail struct {
	Loan
	RA        string
	Nome      string
	Sobrenome string
	Titulo    string
	Autor     string
}
