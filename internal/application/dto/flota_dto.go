package dto

import "time"

// CreateColectivoRequest alta de unidad.
type CreateColectivoRequest struct {
	Interno      int     `json:"interno"`
	Dominio      string  `json:"dominio"`
	AnioModelo   int     `json:"anio_modelo,omitempty"`
	Marca        string  `json:"marca,omitempty"`
	Modelo       string  `json:"modelo,omitempty"`
	NumeroChasis *string `json:"numero_chasis,omitempty"`

	RevisionTecnicaVto  *time.Time `json:"revision_tecnica_vto,omitempty"`
	MatafuegoVto        *time.Time `json:"matafuego_vto,omitempty"`
	MatafuegoUltControl *time.Time `json:"matafuego_ult_control,omitempty"`

	OdometroKm    *int       `json:"odometro_km,omitempty"`
	OdometroFecha *time.Time `json:"odometro_fecha,omitempty"`

	AceiteIntervaloKm       *int       `json:"aceite_intervalo_km,omitempty"`
	AceiteUltimoCambioKm    *int       `json:"aceite_ultimo_cambio_km,omitempty"`
	AceiteUltimoCambioFecha *time.Time `json:"aceite_ultimo_cambio_fecha,omitempty"`

	FiltrosIntervaloKm       *int       `json:"filtros_intervalo_km,omitempty"`
	FiltrosUltimoCambioKm    *int       `json:"filtros_ultimo_cambio_km,omitempty"`
	FiltrosUltimoCambioFecha *time.Time `json:"filtros_ultimo_cambio_fecha,omitempty"`

	TipoServicio  string `json:"tipo_servicio,omitempty"`
	Jurisdiccion  string `json:"jurisdiccion,omitempty"`
	Estado        string `json:"estado,omitempty"`
	Observaciones string `json:"observaciones,omitempty"`
}

// UpdateColectivoRequest edición parcial de unidad.
type UpdateColectivoRequest struct {
	Interno      *int    `json:"interno,omitempty"`
	Dominio      *string `json:"dominio,omitempty"`
	AnioModelo   *int    `json:"anio_modelo,omitempty"`
	Marca        *string `json:"marca,omitempty"`
	Modelo       *string `json:"modelo,omitempty"`
	NumeroChasis *string `json:"numero_chasis,omitempty"`

	RevisionTecnicaVto  *time.Time `json:"revision_tecnica_vto,omitempty"`
	MatafuegoVto        *time.Time `json:"matafuego_vto,omitempty"`
	MatafuegoUltControl *time.Time `json:"matafuego_ult_control,omitempty"`

	OdometroKm    *int       `json:"odometro_km,omitempty"`
	OdometroFecha *time.Time `json:"odometro_fecha,omitempty"`

	AceiteIntervaloKm       *int       `json:"aceite_intervalo_km,omitempty"`
	AceiteUltimoCambioKm    *int       `json:"aceite_ultimo_cambio_km,omitempty"`
	AceiteUltimoCambioFecha *time.Time `json:"aceite_ultimo_cambio_fecha,omitempty"`

	FiltrosIntervaloKm       *int       `json:"filtros_intervalo_km,omitempty"`
	FiltrosUltimoCambioKm    *int       `json:"filtros_ultimo_cambio_km,omitempty"`
	FiltrosUltimoCambioFecha *time.Time `json:"filtros_ultimo_cambio_fecha,omitempty"`

	TipoServicio  *string `json:"tipo_servicio,omitempty"`
	Jurisdiccion  *string `json:"jurisdiccion,omitempty"`
	Estado        *string `json:"estado,omitempty"`
	Observaciones *string `json:"observaciones,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// ColectivoResponse representación de una unidad.
type ColectivoResponse struct {
	ID           string  `json:"id"`
	Interno      int     `json:"interno"`
	Dominio      string  `json:"dominio"`
	AnioModelo   int     `json:"anio_modelo,omitempty"`
	Marca        string  `json:"marca,omitempty"`
	Modelo       string  `json:"modelo,omitempty"`
	NumeroChasis *string `json:"numero_chasis,omitempty"`

	RevisionTecnicaVto  *time.Time `json:"revision_tecnica_vto,omitempty"`
	MatafuegoVto        *time.Time `json:"matafuego_vto,omitempty"`
	MatafuegoUltControl *time.Time `json:"matafuego_ult_control,omitempty"`

	OdometroKm    *int       `json:"odometro_km,omitempty"`
	OdometroFecha *time.Time `json:"odometro_fecha,omitempty"`

	AceiteIntervaloKm       *int       `json:"aceite_intervalo_km,omitempty"`
	AceiteUltimoCambioKm    *int       `json:"aceite_ultimo_cambio_km,omitempty"`
	AceiteUltimoCambioFecha *time.Time `json:"aceite_ultimo_cambio_fecha,omitempty"`

	FiltrosIntervaloKm       *int       `json:"filtros_intervalo_km,omitempty"`
	FiltrosUltimoCambioKm    *int       `json:"filtros_ultimo_cambio_km,omitempty"`
	FiltrosUltimoCambioFecha *time.Time `json:"filtros_ultimo_cambio_fecha,omitempty"`

	TipoServicio  string    `json:"tipo_servicio,omitempty"`
	Jurisdiccion  string    `json:"jurisdiccion,omitempty"`
	Estado        string    `json:"estado"`
	Observaciones string    `json:"observaciones,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateChoferRequest alta de chofer.
type CreateChoferRequest struct {
	Legajo      string     `json:"legajo"`
	Nombre      string     `json:"nombre"`
	Apellido    string     `json:"apellido"`
	DNI         string     `json:"dni,omitempty"`
	Telefono    string     `json:"telefono,omitempty"`
	LicenciaVto *time.Time `json:"licencia_vto,omitempty"`
}

// UpdateChoferRequest edición parcial de chofer.
type UpdateChoferRequest struct {
	Nombre      *string    `json:"nombre,omitempty"`
	Apellido    *string    `json:"apellido,omitempty"`
	DNI         *string    `json:"dni,omitempty"`
	Telefono    *string    `json:"telefono,omitempty"`
	LicenciaVto *time.Time `json:"licencia_vto,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// ChoferResponse representación de un chofer.
type ChoferResponse struct {
	ID          string     `json:"id"`
	Legajo      string     `json:"legajo"`
	Nombre      string     `json:"nombre"`
	Apellido    string     `json:"apellido"`
	DNI         string     `json:"dni,omitempty"`
	Telefono    string     `json:"telefono,omitempty"`
	LicenciaVto *time.Time `json:"licencia_vto,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ParteRequest alta/edición de parte diario.
type ParteRequest struct {
	ColectivoID string     `json:"colectivo_id"`
	FechaEvento *time.Time `json:"fecha_evento,omitempty"`
	Tipo        string     `json:"tipo"`
	Severidad   string     `json:"severidad,omitempty"`
	Estado      string     `json:"estado,omitempty"`
	OdometroKm  *int       `json:"odometro_km,omitempty"`

	AccionMantenimiento string     `json:"accion_mantenimiento,omitempty"`
	KmMantenimiento     *int       `json:"km_mantenimiento,omitempty"`
	MatafuegoVtoNuevo   *time.Time `json:"matafuego_vto_nuevo,omitempty"`

	AuxilioInicio *time.Time `json:"auxilio_inicio,omitempty"`
	AuxilioFin    *time.Time `json:"auxilio_fin,omitempty"`

	Descripcion   string `json:"descripcion,omitempty"`
	Observaciones string `json:"observaciones,omitempty"`
}

// ParteResponse representación de un parte diario.
type ParteResponse struct {
	ID           string     `json:"id"`
	ColectivoID  string     `json:"colectivo_id"`
	FechaEvento  time.Time  `json:"fecha_evento"`
	ReportadoPor *string    `json:"reportado_por,omitempty"`
	Tipo         string     `json:"tipo"`
	Severidad    string     `json:"severidad"`
	Estado       string     `json:"estado"`
	OdometroKm   *int       `json:"odometro_km,omitempty"`

	AccionMantenimiento string     `json:"accion_mantenimiento,omitempty"`
	KmMantenimiento     *int       `json:"km_mantenimiento,omitempty"`
	MatafuegoVtoNuevo   *time.Time `json:"matafuego_vto_nuevo,omitempty"`

	AuxilioInicio      *time.Time `json:"auxilio_inicio,omitempty"`
	AuxilioFin         *time.Time `json:"auxilio_fin,omitempty"`
	DuracionAuxilioMin *int       `json:"duracion_auxilio_min,omitempty"`

	Descripcion   string    `json:"descripcion,omitempty"`
	Observaciones string    `json:"observaciones,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SalidaRequest alta/edición de salida programada.
type SalidaRequest struct {
	ColectivoID      string     `json:"colectivo_id"`
	ChoferID         *string    `json:"chofer_id,omitempty"`
	SalidaProgramada time.Time  `json:"salida_programada"`
	Regreso          *time.Time `json:"regreso,omitempty"`
	Recorrido        string     `json:"recorrido,omitempty"`
	Seccion          string     `json:"seccion,omitempty"`
	Tipo             string     `json:"tipo,omitempty"`
	Estado           string     `json:"estado,omitempty"`
	Nota             string     `json:"nota,omitempty"`
}

// SalidaResponse representación de una salida con datos resueltos para el
// tablero (interno, dominio y chofer en texto).
type SalidaResponse struct {
	ID               string     `json:"id"`
	ColectivoID      string     `json:"colectivo_id"`
	Interno          int        `json:"interno"`
	Dominio          string     `json:"dominio"`
	ChoferID         *string    `json:"chofer_id,omitempty"`
	Chofer           string     `json:"chofer,omitempty"`
	SalidaProgramada time.Time  `json:"salida_programada"`
	Regreso          *time.Time `json:"regreso,omitempty"`
	Recorrido        string     `json:"recorrido,omitempty"`
	Seccion          string     `json:"seccion,omitempty"`
	Tipo             string     `json:"tipo,omitempty"`
	Estado           string     `json:"estado"`
	Nota             string     `json:"nota,omitempty"`
}

// DiaSalidasResponse salidas de un día resuelto.
type DiaSalidasResponse struct {
	Dia     string           `json:"dia"` // YYYY-MM-DD
	Salidas []SalidaResponse `json:"salidas"`
}

// DualResponse tablero dual hoy/mañana.
type DualResponse struct {
	Hoy    DiaSalidasResponse `json:"hoy"`
	Manana DiaSalidasResponse `json:"manana"`
}
