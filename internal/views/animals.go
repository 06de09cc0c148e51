package views

// Animal es el modelo de presentación (strings ya formateados).
type Animal struct {
	ID             string
	Species        string
	Extinct        bool
	Location       string
	LifeExpectancy string
	Image          string
}

// Form alimenta las vistas new/edit. Action incluye el _method cuando aplica.
type Form struct {
	Action string
	Animal Animal
	Error  string
}
