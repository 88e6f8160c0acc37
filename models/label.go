package models

type Label struct {
	Name        string
	Color       string
	Description string
}

type LabelRecord struct {
	Name   string
	Exists bool
}
