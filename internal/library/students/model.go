package students

import "time"

// Student is a row of aluno. ID is 0 until the database assigns one.
type Student struct {
	ID             int64
	RA             string
	Nome           string
	Sobrenome      string
	DataNascimento time.Time
	Endereco       string
	Email          string
	Celular        string
}
