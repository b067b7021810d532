package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gabiv12/panol-erp/internal/application/auth"
	"github.com/gabiv12/panol-erp/internal/application/dto"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios (sólo gerencia). El alta pasa por
// AuthUseCase.RegisterUser; acá van consulta, edición y baja.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUsuarioResponse(u), nil
}

// Update actualiza email, nombre, rol, estado o password de un usuario.
func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Rol != nil {
		if !entity.RolValido(*in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		u.Rol = *in.Rol
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.UsuarioActivo, entity.UsuarioInactivo, entity.UsuarioSuspendido:
		default:
			return nil, domain.ErrInvalidInput
		}
		u.Status = *in.Status
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(u), nil
}

// List lista usuarios con paginación.
func (uc *UsuarioUseCase) List(page dto.PageRequest) (*dto.UsuarioListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un usuario. No permite que un usuario se elimine a sí mismo.
func (uc *UsuarioUseCase) Delete(id, actorID string) error {
	if id == actorID {
		return domain.ErrInvalidInput
	}
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}
