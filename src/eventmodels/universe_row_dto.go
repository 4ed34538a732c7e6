package eventmodels

type UniverseRowDTO struct {
	Symbol string `csv:"Symbol"`
	Name   string `csv:"Name"`
	Sector string `csv:"Sector"`
}
