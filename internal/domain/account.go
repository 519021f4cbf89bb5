package domain

// Account representa uma conta (cliente) do CRM
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Segment *string `json:"segment"`
}

// Rep representa um vendedor
type Rep struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
