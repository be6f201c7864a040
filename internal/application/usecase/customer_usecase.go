package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/fiado-api/internal/application/dto"
	"github.com/tu-usuario/fiado-api/internal/domain"
	"github.com/tu-usuario/fiado-api/internal/domain/entity"
	"github.com/tu-usuario/fiado-api/internal/domain/repository"
	"github.com/tu-usuario/fiado-api/pkg/identity"
)

// CustomerUseCase casos de uso CRUD para clientes. El borrado arrastra las
// compras del cliente en la misma transacción.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	txRunner CascadeTxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, txRunner CascadeTxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, txRunner: txRunner}
}

// Create registra un cliente nuevo. El nombre es obligatorio.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:           identity.New(),
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		RegisteredAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID. Ausente → (nil, nil).
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes en orden de registro.
func (uc *CustomerUseCase) List() (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}, nil
}

// Update edita nombre y/o teléfono de un cliente.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = name
	}
	if in.Phone != nil {
		customer.Phone = strings.TrimSpace(*in.Phone)
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina el cliente y todas sus compras en una sola transacción.
// Devuelve cuántas compras arrastró la cascada.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) (*dto.DeleteCustomerResponse, error) {
	var deleted int
	err := uc.txRunner.RunCascade(ctx, func(
		customerRepo repository.CustomerRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		if err := customerRepo.Delete(id); err != nil {
			return err
		}
		n, err := purchaseRepo.DeleteByCustomer(id)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeleteCustomerResponse{DeletedPurchases: deleted}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		RegisteredAt: c.RegisteredAt,
	}
}
