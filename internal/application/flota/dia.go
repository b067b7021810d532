package flota

import "time"

// consultaDiagrama es lo mínimo que necesita el resolutor para saber si un día
// tiene salidas. Lo implementa repository.SalidaRepository.
type consultaDiagrama interface {
	DiaTieneSalidas(desde, hasta time.Time) (bool, error)
	UltimaSalida() (*time.Time, error)
}

// ResolutorDia decide qué día calendario mostrar por defecto en las pantallas
// del diagrama, para que nunca queden vacías.
type ResolutorDia struct {
	loc  *time.Location
	repo consultaDiagrama
}

// NewResolutorDia construye el resolutor con la zona horaria de la operación.
func NewResolutorDia(loc *time.Location, repo consultaDiagrama) *ResolutorDia {
	return &ResolutorDia{loc: loc, repo: repo}
}

// Resolver devuelve el día a mostrar.
//
// Heurística operativa:
//   - Si el usuario eligió fecha explícita, esa gana y no hay fallback.
//   - Preferido: >=18hs mañana, <18hs hoy (el diagramador arma el día
//     siguiente a la tarde).
//   - Si el día preferido no tiene salidas, cae al último día que sí tenga;
//     si no existe ninguno, queda el preferido.
func (r *ResolutorDia) Resolver(now time.Time, explicito *time.Time) (time.Time, error) {
	if explicito != nil {
		return r.truncarDia(*explicito), nil
	}

	local := now.In(r.loc)
	preferido := r.truncarDia(local)
	if local.Hour() >= 18 {
		preferido = preferido.AddDate(0, 0, 1)
	}

	desde, hasta := r.LimitesDia(preferido)
	tiene, err := r.repo.DiaTieneSalidas(desde, hasta)
	if err != nil {
		return time.Time{}, err
	}
	if tiene {
		return preferido, nil
	}

	ultima, err := r.repo.UltimaSalida()
	if err != nil {
		return time.Time{}, err
	}
	if ultima == nil {
		return preferido, nil
	}
	return r.truncarDia(ultima.In(r.loc)), nil
}

// LimitesDia devuelve el rango [desde, hasta) del día en la zona local.
func (r *ResolutorDia) LimitesDia(dia time.Time) (time.Time, time.Time) {
	desde := r.truncarDia(dia)
	return desde, desde.AddDate(0, 0, 1)
}

func (r *ResolutorDia) truncarDia(t time.Time) time.Time {
	local := t.In(r.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.loc)
}
