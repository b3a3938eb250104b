package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/lokalmart/lokalmart/lokalmart/database/models"
	engine "github.com/lokalmart/lokalmart/lokalmart/engine"
	gomock "go.uber.org/mock/gomock"
)

// MockLocalStore is a mock of the LocalStore interface.
type MockLocalStore struct {
	ctrl     *gomock.Controller
	recorder *MockLocalStoreMockRecorder
	isgomock struct{}
}

// MockLocalStoreMockRecorder is the mock recorder for MockLocalStore.
type MockLocalStoreMockRecorder struct {
	mock *MockLocalStore
}

// NewMockLocalStore creates a new mock instance.
func NewMockLocalStore(ctrl *gomock.Controller) *MockLocalStore {
	mock := &MockLocalStore{ctrl: ctrl}
	mock.recorder = &MockLocalStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLocalStore) EXPECT() *MockLocalStoreMockRecorder {
	return m.recorder
}

// DeleteOffer mocks base method.
func (m *MockLocalStore) DeleteOffer(ctx context.Context, offer *models.Offer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteOffer", ctx, offer)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteOffer indicates an expected call of DeleteOffer.
func (mr *MockLocalStoreMockRecorder) DeleteOffer(ctx, offer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteOffer", reflect.TypeOf((*MockLocalStore)(nil).DeleteOffer), ctx, offer)
}

// GetListing mocks base method.
func (m *MockLocalStore) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetListing", ctx, id)
	ret0, _ := ret[0].(*models.Listing)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetListing indicates an expected call of GetListing.
func (mr *MockLocalStoreMockRecorder) GetListing(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetListing", reflect.TypeOf((*MockLocalStore)(nil).GetListing), ctx, id)
}

// GetOffer mocks base method.
func (m *MockLocalStore) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOffer", ctx, id)
	ret0, _ := ret[0].(*models.Offer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOffer indicates an expected call of GetOffer.
func (mr *MockLocalStoreMockRecorder) GetOffer(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOffer", reflect.TypeOf((*MockLocalStore)(nil).GetOffer), ctx, id)
}

// GetOffersForListing mocks base method.
func (m *MockLocalStore) GetOffersForListing(ctx context.Context, listingID string) ([]*models.Offer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOffersForListing", ctx, listingID)
	ret0, _ := ret[0].([]*models.Offer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOffersForListing indicates an expected call of GetOffersForListing.
func (mr *MockLocalStoreMockRecorder) GetOffersForListing(ctx, listingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOffersForListing", reflect.TypeOf((*MockLocalStore)(nil).GetOffersForListing), ctx, listingID)
}

// GetSentOffersForListing mocks base method.
func (m *MockLocalStore) GetSentOffersForListing(ctx context.Context, listingID string) ([]*models.Offer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSentOffersForListing", ctx, listingID)
	ret0, _ := ret[0].([]*models.Offer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSentOffersForListing indicates an expected call of GetSentOffersForListing.
func (mr *MockLocalStoreMockRecorder) GetSentOffersForListing(ctx, listingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSentOffersForListing", reflect.TypeOf((*MockLocalStore)(nil).GetSentOffersForListing), ctx, listingID)
}

// InsertOffer mocks base method.
func (m *MockLocalStore) InsertOffer(ctx context.Context, offer *models.Offer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertOffer", ctx, offer)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertOffer indicates an expected call of InsertOffer.
func (mr *MockLocalStoreMockRecorder) InsertOffer(ctx, offer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertOffer", reflect.TypeOf((*MockLocalStore)(nil).InsertOffer), ctx, offer)
}

// UpdateListingStatus mocks base method.
func (m *MockLocalStore) UpdateListingStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateListingStatus", ctx, id, status, sold)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateListingStatus indicates an expected call of UpdateListingStatus.
func (mr *MockLocalStoreMockRecorder) UpdateListingStatus(ctx, id, status, sold any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateListingStatus", reflect.TypeOf((*MockLocalStore)(nil).UpdateListingStatus), ctx, id, status, sold)
}

// UpdateOfferStatus mocks base method.
func (m *MockLocalStore) UpdateOfferStatus(ctx context.Context, id string, status models.OfferStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateOfferStatus", ctx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateOfferStatus indicates an expected call of UpdateOfferStatus.
func (mr *MockLocalStoreMockRecorder) UpdateOfferStatus(ctx, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateOfferStatus", reflect.TypeOf((*MockLocalStore)(nil).UpdateOfferStatus), ctx, id, status)
}

// MockRemoteOfferStore is a mock of the RemoteOfferStore interface.
type MockRemoteOfferStore struct {
	ctrl     *gomock.Controller
	recorder *MockRemoteOfferStoreMockRecorder
	isgomock struct{}
}

// MockRemoteOfferStoreMockRecorder is the mock recorder for MockRemoteOfferStore.
type MockRemoteOfferStoreMockRecorder struct {
	mock *MockRemoteOfferStore
}

// NewMockRemoteOfferStore creates a new mock instance.
func NewMockRemoteOfferStore(ctrl *gomock.Controller) *MockRemoteOfferStore {
	mock := &MockRemoteOfferStore{ctrl: ctrl}
	mock.recorder = &MockRemoteOfferStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRemoteOfferStore) EXPECT() *MockRemoteOfferStoreMockRecorder {
	return m.recorder
}

// Save mocks base method.
func (m *MockRemoteOfferStore) Save(ctx context.Context, offer *models.Offer) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, offer)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockRemoteOfferStoreMockRecorder) Save(ctx, offer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockRemoteOfferStore)(nil).Save), ctx, offer)
}

// UpdateStatus mocks base method.
func (m *MockRemoteOfferStore) UpdateStatus(ctx context.Context, id string, status models.OfferStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockRemoteOfferStoreMockRecorder) UpdateStatus(ctx, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockRemoteOfferStore)(nil).UpdateStatus), ctx, id, status)
}

// MockRemoteListingStore is a mock of the RemoteListingStore interface.
type MockRemoteListingStore struct {
	ctrl     *gomock.Controller
	recorder *MockRemoteListingStoreMockRecorder
	isgomock struct{}
}

// MockRemoteListingStoreMockRecorder is the mock recorder for MockRemoteListingStore.
type MockRemoteListingStoreMockRecorder struct {
	mock *MockRemoteListingStore
}

// NewMockRemoteListingStore creates a new mock instance.
func NewMockRemoteListingStore(ctrl *gomock.Controller) *MockRemoteListingStore {
	mock := &MockRemoteListingStore{ctrl: ctrl}
	mock.recorder = &MockRemoteListingStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRemoteListingStore) EXPECT() *MockRemoteListingStoreMockRecorder {
	return m.recorder
}

// UpdateStatus mocks base method.
func (m *MockRemoteListingStore) UpdateStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, status, sold)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockRemoteListingStoreMockRecorder) UpdateStatus(ctx, id, status, sold any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockRemoteListingStore)(nil).UpdateStatus), ctx, id, status, sold)
}

// MockNotifier is a mock of the Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
	isgomock struct{}
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// PostSystemMessage mocks base method.
func (m *MockNotifier) PostSystemMessage(ctx context.Context, notice engine.SystemNotice) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PostSystemMessage", ctx, notice)
	ret0, _ := ret[0].(error)
	return ret0
}

// PostSystemMessage indicates an expected call of PostSystemMessage.
func (mr *MockNotifierMockRecorder) PostSystemMessage(ctx, notice any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PostSystemMessage", reflect.TypeOf((*MockNotifier)(nil).PostSystemMessage), ctx, notice)
}
