package entity

import "time"

// Estados de una salida programada.
const (
	SalidaPROGRAMADA = "PROGRAMADA"
	SalidaCONFIRMADA = "CONFIRMADA"
	SalidaCANCELADA  = "CANCELADA"
)

// Salida representa una salida programada del diagrama diario (tablero de
// despacho): qué unidad sale, a qué hora, con qué chofer y en qué recorrido.
type Salida struct {
	ID               string
	ColectivoID      string
	ChoferID         *string
	SalidaProgramada time.Time // fecha y hora de salida
	Regreso          *time.Time
	Recorrido        string
	Seccion          string
	Tipo             string
	Estado           string
	Nota             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
