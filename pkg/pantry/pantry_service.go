package pantry

import (
	"Pantry-Tracker/domain"
	"Pantry-Tracker/entities"
	"Pantry-Tracker/internal/utils"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	PantryService interface {
		AddPantryEntry(ctx context.Context, req domain.AddPantryEntryRequest) (domain.PantryEntryResponse, error)
		GetPantryEntries(ctx context.Context) ([]domain.PantryEntryResponse, error)
		GetPantryEntryByID(ctx context.Context, id int64) (domain.PantryEntryResponse, error)
		GetExpiringSoon(ctx context.Context) ([]domain.PantryEntryResponse, error)
		MarkAsOpened(ctx context.Context, id int64) error
		DeletePantryEntry(ctx context.Context, id int64) error
	}

	pantryService struct {
		pantryRepository PantryRepository
		location         *time.Location
		now              func() time.Time
	}
)

func NewPantryService(pantryRepository PantryRepository, location *time.Location) PantryService {
	if location == nil {
		location = time.Local
	}
	return &pantryService{
		pantryRepository: pantryRepository,
		location:         location,
		now:              time.Now,
	}
}

func (s *pantryService) AddPantryEntry(ctx context.Context, req domain.AddPantryEntryRequest) (domain.PantryEntryResponse, error) {
	expiryDate, err := utils.ParseDate(req.ExpiryDate)
	if err != nil {
		return domain.PantryEntryResponse{}, domain.NewValidationFailure(domain.FieldErrors{
			"expiryDate": domain.MessageInvalidExpiryDate,
		})
	}

	entry := &entities.PantryEntry{
		ExpiryDate: expiryDate,
		Opened:     false,
	}
	if err := s.pantryRepository.AddPantryEntry(ctx, req.Name, entry); err != nil {
		return domain.PantryEntryResponse{}, err
	}

	return s.toResponse(entry, s.today()), nil
}

func (s *pantryService) GetPantryEntries(ctx context.Context) ([]domain.PantryEntryResponse, error) {
	entries, err := s.pantryRepository.GetPantryEntriesWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(entries), nil
}

func (s *pantryService) GetPantryEntryByID(ctx context.Context, id int64) (domain.PantryEntryResponse, error) {
	entry, err := s.pantryRepository.GetPantryEntryWithProduct(ctx, id)
	if err != nil {
		return domain.PantryEntryResponse{}, err
	}
	return s.toResponse(entry, s.today()), nil
}

func (s *pantryService) GetExpiringSoon(ctx context.Context) ([]domain.PantryEntryResponse, error) {
	cutoff := calendarDate(s.today()).AddDate(0, 0, domain.ExpiringSoonDays)
	entries, err := s.pantryRepository.GetPantryEntriesExpiringBy(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	return s.toResponses(entries), nil
}

func (s *pantryService) MarkAsOpened(ctx context.Context, id int64) error {
	rows, err := s.pantryRepository.MarkPantryEntryOpened(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		log.Warnf("mark opened: pantry entry %d does not exist", id)
	}
	return nil
}

func (s *pantryService) DeletePantryEntry(ctx context.Context, id int64) error {
	rows, err := s.pantryRepository.DeletePantryEntry(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		log.Warnf("delete: pantry entry %d does not exist", id)
	}
	return nil
}

func (s *pantryService) today() time.Time {
	return s.now().In(s.location)
}

func (s *pantryService) toResponses(entries []*entities.PantryEntry) []domain.PantryEntryResponse {
	today := s.today()
	response := make([]domain.PantryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, s.toResponse(entry, today))
	}
	return response
}

func (s *pantryService) toResponse(entry *entities.PantryEntry, today time.Time) domain.PantryEntryResponse {
	days := DaysRemaining(today, entry.ExpiryDate)
	res := domain.PantryEntryResponse{
		ID:            entry.ID,
		ProductID:     entry.ProductID,
		ExpiryDate:    entry.ExpiryDate,
		Opened:        entry.Opened,
		DaysRemaining: days,
		ExpiringSoon:  ExpiringSoon(days),
		Status:        DetermineStatus(days),
	}
	if entry.Product != nil {
		res.Name = entry.Product.Name
		res.OnShoppingList = len(entry.Product.Shoppables) > 0
		if entry.Product.ExternalImage != nil {
			res.ExternalImage = *entry.Product.ExternalImage
		}
	}
	return res
}
