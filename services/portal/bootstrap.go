package portal

import (
	"context"
	"errors"
	"net/url"

	"bookportal/models"
	"bookportal/parseserver"
	"bookportal/services/wizard"
	"bookportal/utils"

	"go.uber.org/zap"
)

// MinHashLength is the cheap fast-reject threshold: hashes shorter than
// this are never valid so the backend is not contacted.
const MinHashLength = 10

// ErrInvalidHash marks identifiers rejected before any network call. The
// HTTP layer turns it into a redirect to the invalid-request page.
var ErrInvalidHash = errors.New("portal: invalid booking hash")

// BookingDataClient is the slice of the RPC client the bootstrap needs.
type BookingDataClient interface {
	GetBookingData(ctx context.Context, hash string) (*models.PortalData, *parseserver.Error)
}

// Session is the page bundle the bootstrap produces: the backend session
// data with the hash re-attached, plus the hydrated wizard view.
type Session struct {
	Data   *models.PortalData `json:"data"`
	Wizard wizard.Snapshot    `json:"wizard"`
}

// Service resolves booking sessions from opaque hashes.
type Service struct {
	Client BookingDataClient
	Images *utils.ImageResolver
	Logger *zap.Logger
}

// NewService builds a bootstrap service.
func NewService(client BookingDataClient, images *utils.ImageResolver, logger *zap.Logger) *Service {
	return &Service{Client: client, Images: images, Logger: logger}
}

// Bootstrap resolves a session. Short hashes fail with ErrInvalidHash
// without touching the network; backend failures surface as
// *parseserver.Error with the backend's status and message.
func (s *Service) Bootstrap(ctx context.Context, hash string, query url.Values) (*Session, error) {
	if len(hash) < MinHashLength {
		s.Logger.Debug("rejecting short hash", zap.Int("length", len(hash)))
		return nil, ErrInvalidHash
	}

	data, rpcErr := s.Client.GetBookingData(ctx, hash)
	if rpcErr != nil {
		return nil, rpcErr
	}
	// The backend does not echo the hash; downstream calls need it.
	data.Hash = hash

	store := wizard.NewStore(&wizard.URLParams{Values: query}, s.Images, s.Logger)
	if err := store.Init(data); err != nil {
		return nil, err
	}

	return &Session{Data: data, Wizard: store.Snapshot()}, nil
}
