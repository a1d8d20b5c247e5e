package models

import "time"

// RequestType is a fee catalog entry for student-initiated
// administrative requests (transcripts, certificates, and the like).
type RequestType struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=50"`
	Cost int    `json:"cost" validate:"required,min=0"`
}

type StudentRequest struct {
	ID        string       `json:"id"`
	Reference int          `json:"reference" validate:"required"`
	StartDate time.Time    `json:"start_date" validate:"required"`
	EndDate   time.Time    `json:"end_date" validate:"required"`
	TypeID    string       `json:"type_id" validate:"required,uuid"`
	StudentID string       `json:"student_id" validate:"required,uuid"`
	Type      *RequestType `json:"type,omitempty"`
	Student   *Student     `json:"student,omitempty"`
}

// Book is a library catalog entry.
type Book struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=50"`
}

type Loan struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	Note      string    `json:"note" validate:"max=100"`
	BookID    string    `json:"book_id" validate:"required,uuid"`
	StudentID string    `json:"student_id" validate:"required,uuid"`
	Book      *Book     `json:"book,omitempty"`
	Student   *Student  `json:"student,omitempty"`
}
