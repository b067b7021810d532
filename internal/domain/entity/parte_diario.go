package entity

import "time"

// Tipos de parte diario.
const (
	ParteCHECKLIST     = "CHECKLIST"
	ParteINCIDENCIA    = "INCIDENCIA"
	ParteMANTENIMIENTO = "MANTENIMIENTO"
	ParteAUXILIO       = "AUXILIO"
)

// Severidades.
const (
	SeveridadBAJA    = "BAJA"
	SeveridadMEDIA   = "MEDIA"
	SeveridadALTA    = "ALTA"
	SeveridadCRITICA = "CRITICA"
)

// Estados del parte.
const (
	ParteABIERTO   = "ABIERTO"
	ParteEnProceso = "EN_PROCESO"
	ParteRESUELTO  = "RESUELTO"
)

// Acciones de mantenimiento (si Tipo = MANTENIMIENTO).
const (
	AccionACEITE    = "ACEITE"
	AccionFILTROS   = "FILTROS"
	AccionLIMPIEZA  = "LIMPIEZA"
	AccionMATAFUEGO = "MATAFUEGO"
	AccionOTRO      = "OTRO"
)

// ParteDiario registra un evento sobre una unidad: checklist, incidencia,
// acción de mantenimiento o auxilio en ruta.
type ParteDiario struct {
	ID            string
	ColectivoID   string
	FechaEvento   time.Time
	ReportadoPor  *string // UsuarioID
	Tipo          string
	Severidad     string
	Estado        string
	OdometroKm    *int

	// Mantenimiento (si Tipo = MANTENIMIENTO)
	AccionMantenimiento string
	KmMantenimiento     *int
	MatafuegoVtoNuevo   *time.Time

	// Auxilio (si Tipo = AUXILIO)
	AuxilioInicio *time.Time
	AuxilioFin    *time.Time

	Descripcion   string
	Observaciones string
	CreatedAt     time.Time
}

// DuracionAuxilioMin devuelve la duración del auxilio en minutos, o nil si
// falta el inicio o el fin.
func (p *ParteDiario) DuracionAuxilioMin() *int {
	if p.AuxilioInicio == nil || p.AuxilioFin == nil {
		return nil
	}
	min := int(p.AuxilioFin.Sub(*p.AuxilioInicio).Minutes())
	return &min
}
