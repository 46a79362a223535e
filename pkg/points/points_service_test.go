package points

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
)

type transfer struct {
	senderID    uuid.UUID
	recipientID uuid.UUID
	amount      int
}

type fakePointsRepository struct {
	stats     map[string]int
	requests  map[string]*entities.PointsRequest
	transfers []transfer
}

func newFakePointsRepository() *fakePointsRepository {
	return &fakePointsRepository{
		stats:    map[string]int{"balance": 0, "total_received": 0, "total_cashback": 0},
		requests: map[string]*entities.PointsRequest{},
	}
}

func (f *fakePointsRepository) GetUserBalance(ctx context.Context, userID string) (int, error) {
	return f.stats["balance"], nil
}

func (f *fakePointsRepository) GetUserPointsStats(ctx context.Context, userID string) (map[string]int, error) {
	return f.stats, nil
}

func (f *fakePointsRepository) CreditPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error {
	f.stats["balance"] += amount
	return nil
}

func (f *fakePointsRepository) DebitPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error {
	if f.stats["balance"] < amount {
		return domain.ErrInsufficientPoints
	}
	f.stats["balance"] -= amount
	return nil
}

func (f *fakePointsRepository) TransferPoints(ctx context.Context, senderID, recipientID uuid.UUID, amount int, note string) error {
	if f.stats["balance"] < amount {
		return domain.ErrInsufficientPoints
	}
	f.transfers = append(f.transfers, transfer{senderID: senderID, recipientID: recipientID, amount: amount})
	return nil
}

func (f *fakePointsRepository) GetUserPointsTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.PointsTransaction, int64, error) {
	return nil, 0, nil
}

func (f *fakePointsRepository) CreatePointsRequest(ctx context.Context, req *entities.PointsRequest) error {
	f.requests[req.ID.String()] = req
	return nil
}

func (f *fakePointsRepository) GetPointsRequestByID(ctx context.Context, id string) (*entities.PointsRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return req, nil
}

func (f *fakePointsRepository) UpdatePointsRequestStatus(ctx context.Context, id string, status string) error {
	req, ok := f.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.Status = status
	return nil
}

func (f *fakePointsRepository) CreditTopUp(ctx context.Context, userID string, amount int, description string) error {
	f.stats["balance"] += amount
	return nil
}

type fakeUserRepository struct {
	users []*entities.User
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByGamertag(ctx context.Context, gamertag string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Gamertag == gamertag {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return nil
}

type fakePaymentService struct {
	lastRequest domain.GatewayPaymentRequest
}

func (f *fakePaymentService) CreateTransaction(ctx context.Context, req domain.GatewayPaymentRequest, userID string) (*domain.GatewayPaymentResponse, error) {
	f.lastRequest = req
	return &domain.GatewayPaymentResponse{OrderID: "KOLO-test", InvoiceURL: "https://pay.example/KOLO-test"}, nil
}

func (f *fakePaymentService) HandleNotification(ctx context.Context, notif domain.PaymentNotification) error {
	return nil
}

func seedUser(repo *fakeUserRepository, gamertag string) *entities.User {
	u := &entities.User{ID: uuid.New(), Gamertag: gamertag, Email: gamertag + "@mail.test"}
	repo.users = append(repo.users, u)
	return u
}

func TestSendPoints(t *testing.T) {
	pointsRepo := newFakePointsRepository()
	pointsRepo.stats["balance"] = 500
	userRepo := &fakeUserRepository{}
	sender := seedUser(userRepo, "alice")
	recipient := seedUser(userRepo, "bob")

	svc := NewPointsService(pointsRepo, userRepo, &fakePaymentService{})

	err := svc.SendPoints(context.Background(), domain.SendPointsRequest{
		RecipientGamertag: "bob",
		Amount:            200,
		Note:              "lunch",
	}, sender.ID.String())
	require.NoError(t, err)

	require.Len(t, pointsRepo.transfers, 1)
	require.Equal(t, sender.ID, pointsRepo.transfers[0].senderID)
	require.Equal(t, recipient.ID, pointsRepo.transfers[0].recipientID)
	require.Equal(t, 200, pointsRepo.transfers[0].amount)
}

func TestSendPointsRecipientNotFound(t *testing.T) {
	userRepo := &fakeUserRepository{}
	sender := seedUser(userRepo, "alice")

	svc := NewPointsService(newFakePointsRepository(), userRepo, &fakePaymentService{})

	err := svc.SendPoints(context.Background(), domain.SendPointsRequest{
		RecipientGamertag: "ghost",
		Amount:            100,
	}, sender.ID.String())
	require.ErrorIs(t, err, domain.ErrRecipientNotFound)
}

func TestSendPointsToSelf(t *testing.T) {
	userRepo := &fakeUserRepository{}
	sender := seedUser(userRepo, "alice")

	svc := NewPointsService(newFakePointsRepository(), userRepo, &fakePaymentService{})

	err := svc.SendPoints(context.Background(), domain.SendPointsRequest{
		RecipientGamertag: "alice",
		Amount:            100,
	}, sender.ID.String())
	require.ErrorIs(t, err, domain.ErrSelfTransfer)
}

func TestRequestPoints(t *testing.T) {
	pointsRepo := newFakePointsRepository()
	userRepo := &fakeUserRepository{}
	requester := seedUser(userRepo, "alice")
	seedUser(userRepo, "bob")

	svc := NewPointsService(pointsRepo, userRepo, &fakePaymentService{})

	resp, err := svc.RequestPoints(context.Background(), domain.RequestPointsRequest{
		RecipientGamertag: "bob",
		Amount:            300,
		Note:              "rent share",
	}, requester.ID.String())
	require.NoError(t, err)

	require.Equal(t, "alice", resp.RequesterGamertag)
	require.Equal(t, "bob", resp.RecipientGamertag)
	require.Equal(t, domain.PointsRequestStatusPending, resp.Status)
	require.Contains(t, pointsRepo.requests, resp.ID)
}

func TestRespondToRequestAccept(t *testing.T) {
	pointsRepo := newFakePointsRepository()
	pointsRepo.stats["balance"] = 1000
	userRepo := &fakeUserRepository{}
	requester := seedUser(userRepo, "alice")
	recipient := seedUser(userRepo, "bob")

	svc := NewPointsService(pointsRepo, userRepo, &fakePaymentService{})

	resp, err := svc.RequestPoints(context.Background(), domain.RequestPointsRequest{
		RecipientGamertag: "bob",
		Amount:            300,
	}, requester.ID.String())
	require.NoError(t, err)

	err = svc.RespondToRequest(context.Background(), domain.RespondPointsRequest{
		RequestID: resp.ID,
		Accept:    true,
	}, recipient.ID.String())
	require.NoError(t, err)

	// accepting moves points from the recipient of the request to its requester
	require.Len(t, pointsRepo.transfers, 1)
	require.Equal(t, recipient.ID, pointsRepo.transfers[0].senderID)
	require.Equal(t, requester.ID, pointsRepo.transfers[0].recipientID)
	require.Equal(t, domain.PointsRequestStatusAccepted, pointsRepo.requests[resp.ID].Status)
}

func TestRespondToRequestReject(t *testing.T) {
	pointsRepo := newFakePointsRepository()
	userRepo := &fakeUserRepository{}
	requester := seedUser(userRepo, "alice")
	recipient := seedUser(userRepo, "bob")

	svc := NewPointsService(pointsRepo, userRepo, &fakePaymentService{})

	resp, err := svc.RequestPoints(context.Background(), domain.RequestPointsRequest{
		RecipientGamertag: "bob",
		Amount:            300,
	}, requester.ID.String())
	require.NoError(t, err)

	err = svc.RespondToRequest(context.Background(), domain.RespondPointsRequest{
		RequestID: resp.ID,
		Accept:    false,
	}, recipient.ID.String())
	require.NoError(t, err)

	require.Empty(t, pointsRepo.transfers)
	require.Equal(t, domain.PointsRequestStatusRejected, pointsRepo.requests[resp.ID].Status)
}

func TestRespondToRequestOnlyRecipient(t *testing.T) {
	pointsRepo := newFakePointsRepository()
	userRepo := &fakeUserRepository{}
	requester := seedUser(userRepo, "alice")
	seedUser(userRepo, "bob")
	outsider := seedUser(userRepo, "carol")

	svc := NewPointsService(pointsRepo, userRepo, &fakePaymentService{})

	resp, err := svc.RequestPoints(context.Background(), domain.RequestPointsRequest{
		RecipientGamertag: "bob",
		Amount:            300,
	}, requester.ID.String())
	require.NoError(t, err)

	err = svc.RespondToRequest(context.Background(), domain.RespondPointsRequest{
		RequestID: resp.ID,
		Accept:    true,
	}, outsider.ID.String())
	require.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = svc.RespondToRequest(context.Background(), domain.RespondPointsRequest{
		RequestID: resp.ID,
		Accept:    true,
	}, requester.ID.String())
	require.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestRespondToRequestAlreadyClosed(t *testing.T) {
	pointsRepo := newFakePointsRepository()
	pointsRepo.stats["balance"] = 1000
	userRepo := &fakeUserRepository{}
	requester := seedUser(userRepo, "alice")
	recipient := seedUser(userRepo, "bob")

	svc := NewPointsService(pointsRepo, userRepo, &fakePaymentService{})

	resp, err := svc.RequestPoints(context.Background(), domain.RequestPointsRequest{
		RecipientGamertag: "bob",
		Amount:            300,
	}, requester.ID.String())
	require.NoError(t, err)

	respond := domain.RespondPointsRequest{RequestID: resp.ID, Accept: true}
	require.NoError(t, svc.RespondToRequest(context.Background(), respond, recipient.ID.String()))

	err = svc.RespondToRequest(context.Background(), respond, recipient.ID.String())
	require.ErrorIs(t, err, domain.ErrRequestAlreadyClosed)
}

func TestRespondToRequestNotFound(t *testing.T) {
	userRepo := &fakeUserRepository{}
	recipient := seedUser(userRepo, "bob")

	svc := NewPointsService(newFakePointsRepository(), userRepo, &fakePaymentService{})

	err := svc.RespondToRequest(context.Background(), domain.RespondPointsRequest{
		RequestID: uuid.NewString(),
		Accept:    true,
	}, recipient.ID.String())
	require.ErrorIs(t, err, domain.ErrPointsRequestNotFound)
}

func TestTopUpPointsConvertsAtFixedRate(t *testing.T) {
	userRepo := &fakeUserRepository{}
	buyer := seedUser(userRepo, "alice")
	gateway := &fakePaymentService{}

	svc := NewPointsService(newFakePointsRepository(), userRepo, gateway)

	resp, err := svc.TopUpPoints(context.Background(), domain.TopUpPointsRequest{
		Points: 100,
		Email:  buyer.Email,
	}, buyer.ID.String())
	require.NoError(t, err)

	// 100 points at 78.359 FCFA each, rounded to a whole invoice amount
	require.Equal(t, int64(7836), gateway.lastRequest.AmountFiat)
	require.Equal(t, domain.PaymentPurposeTopUp, gateway.lastRequest.Purpose)
	require.Equal(t, "KOLO-test", resp.TransactionID)
	require.NotEmpty(t, resp.InvoiceURL)
}
