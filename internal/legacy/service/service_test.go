package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,ReceiverLookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"afternote/internal/legacy/models"
	"afternote/internal/legacy/service/mocks"
	"afternote/internal/legacy/store"
	receiverauth "afternote/internal/receiverauth/models"
	receiverstore "afternote/internal/receiverauth/store/receiver"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/audit"
	"afternote/pkg/platform/audit/publisher"
	auditmemory "afternote/pkg/platform/audit/store/memory"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx        context.Context
	now        time.Time
	store      *store.InMemoryStore
	auditStore *auditmemory.InMemoryStore
	service    *Service
	capability receiverauth.AccessCapability
	stranger   receiverauth.AccessCapability
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.store = store.NewInMemoryStore()
	s.auditStore = auditmemory.NewInMemoryStore()

	owner := id.OwnerID(uuid.New())
	receivers := receiverstore.NewInMemoryStore()
	mine := s.registerReceiver(receivers, owner, "jiwoo@example.com")
	sibling := s.registerReceiver(receivers, owner, "minji@example.com")
	s.capability = receiverauth.AccessCapability{ReceiverID: mine.ID, OwnerID: owner}
	s.stranger = receiverauth.AccessCapability{ReceiverID: sibling.ID, OwnerID: owner}

	svc, err := New(s.store,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(publisher.NewPublisher(s.auditStore)),
		WithSenderNames(receivers),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) registerReceiver(receivers *receiverstore.InMemoryStore, owner id.OwnerID, email string) *receiverauth.Receiver {
	r, err := receiverauth.NewReceiver(id.ReceiverID(uuid.New()), owner,
		"Jiwoo", "Kim Jihoon", "daughter", email, "digest-"+email, s.now)
	s.Require().NoError(err)
	s.Require().NoError(receivers.Create(s.ctx, r))
	return r
}

func (s *ServiceSuite) seedLetter(capability receiverauth.AccessCapability, title string, createdAt time.Time) models.TimeLetter {
	letter := models.TimeLetter{
		ID:         id.TimeLetterID(uuid.New()),
		DeliveryID: id.TimeLetterReceiverID(uuid.New()),
		OwnerID:    capability.OwnerID,
		ReceiverID: capability.ReceiverID,
		Title:      title,
		Content:    "for you",
		Status:     "SENT",
		CreatedAt:  createdAt,
		Media: []models.TimeLetterMedia{
			{ID: uuid.New(), MediaType: "IMAGE", MediaURL: "https://files.example.com/a.jpg"},
		},
	}
	s.store.SeedTimeLetter(letter)
	return letter
}

func (s *ServiceSuite) TestNew() {
	_, err := New(nil)
	s.ErrorContains(err, "legacy store is required")
}

func (s *ServiceSuite) TestZeroCapabilityIsUnauthorized() {
	_, err := s.service.ListTimeLetters(s.ctx, receiverauth.AccessCapability{}, 0, 0)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	_, err = s.service.Overview(s.ctx, receiverauth.AccessCapability{})
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestListTimeLetters() {
	for i := range 3 {
		s.seedLetter(s.capability, "letter", s.now.Add(time.Duration(i)*time.Hour))
	}
	s.seedLetter(s.stranger, "not yours", s.now)

	s.Run("pages within the share set", func() {
		page, err := s.service.ListTimeLetters(s.ctx, s.capability, 2, 0)
		s.Require().NoError(err)
		s.Len(page.Items, 2)
		s.Equal(3, page.TotalCount)
		s.Equal("Kim Jihoon", page.Items[0].SenderName)
		s.True(page.Items[0].CreatedAt.After(page.Items[1].CreatedAt))
	})

	s.Run("offset past the end is empty", func() {
		page, err := s.service.ListTimeLetters(s.ctx, s.capability, 10, 50)
		s.Require().NoError(err)
		s.Empty(page.Items)
		s.Equal(3, page.TotalCount)
	})
}

func (s *ServiceSuite) TestGetTimeLetterMarksReadOnce() {
	letter := s.seedLetter(s.capability, "first", s.now)

	first, err := s.service.GetTimeLetter(s.ctx, s.capability, letter.DeliveryID)
	s.Require().NoError(err)
	s.Require().NotNil(first.ReadAt)
	s.Equal(s.now, *first.ReadAt)

	later := requestcontext.WithTime(context.Background(), s.now.Add(24*time.Hour))
	second, err := s.service.GetTimeLetter(later, s.capability, letter.DeliveryID)
	s.Require().NoError(err)
	s.Equal(first, second)

	overview, err := s.service.Overview(s.ctx, s.capability)
	s.Require().NoError(err)
	s.Equal(0, overview.UnreadTimeLetters)

	events, err := s.auditStore.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(events, 2)
	s.Equal(string(audit.EventLegacyAccessed), events[0].Action)
}

func (s *ServiceSuite) TestForeignContentLooksMissing() {
	foreign := s.seedLetter(s.stranger, "sibling letter", s.now)

	_, foreignErr := s.service.GetTimeLetter(s.ctx, s.capability, foreign.DeliveryID)
	_, unknownErr := s.service.GetTimeLetter(s.ctx, s.capability, id.TimeLetterReceiverID(uuid.New()))
	s.True(dErrors.HasCode(foreignErr, dErrors.CodeNotFound))
	s.True(dErrors.HasCode(unknownErr, dErrors.CodeNotFound))
	s.Equal(dErrors.MessageOf(unknownErr), dErrors.MessageOf(foreignErr))

	// the sibling's letter stays unread
	own, err := s.service.GetTimeLetter(s.ctx, s.stranger, foreign.DeliveryID)
	s.Require().NoError(err)
	s.Equal(s.now, *own.ReadAt)
}

func (s *ServiceSuite) TestMindRecords() {
	category := "family"
	record := models.MindRecord{
		ID:         id.MindRecordID(uuid.New()),
		OwnerID:    s.capability.OwnerID,
		Type:       "DIARY",
		Title:      "spring",
		Content:    "cherry blossoms",
		RecordDate: id.Date{Year: 2024, Month: time.April, Day: 2},
		Category:   &category,
		CreatedAt:  s.now,
		Images:     []models.MindRecordImage{{ID: uuid.New(), MediaType: "IMAGE", ImageURL: "https://files.example.com/b.jpg"}},
	}
	s.store.SeedMindRecord(record, s.capability.ReceiverID)

	page, err := s.service.ListMindRecords(s.ctx, s.capability, 0, 0)
	s.Require().NoError(err)
	s.Equal(1, page.TotalCount)

	got, err := s.service.GetMindRecord(s.ctx, s.capability, record.ID)
	s.Require().NoError(err)
	s.Equal("cherry blossoms", got.Content)
	s.Len(got.Images, 1)

	_, err = s.service.GetMindRecord(s.ctx, s.stranger, record.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	empty, err := s.service.ListMindRecords(s.ctx, s.stranger, 0, 0)
	s.Require().NoError(err)
	s.Equal(0, empty.TotalCount)
}

func (s *ServiceSuite) TestAfternotes() {
	atmosphere := "calm"
	note := models.Afternote{
		ID:         id.AfternoteID(uuid.New()),
		OwnerID:    s.capability.OwnerID,
		Category:   "PLAYLIST",
		Title:      "my funeral songs",
		Actions:    []string{" close account ", "close account", ""},
		Atmosphere: &atmosphere,
		CreatedAt:  s.now,
		Songs:      []models.Song{{Title: "Spring Day", Artist: "BTS"}},
	}
	s.store.SeedAfternote(note, s.capability.ReceiverID, s.stranger.ReceiverID)

	got, err := s.service.GetAfternote(s.ctx, s.capability, note.ID)
	s.Require().NoError(err)
	s.Equal([]string{"close account"}, got.Actions)
	s.Len(got.Songs, 1)

	shared, err := s.service.GetAfternote(s.ctx, s.stranger, note.ID)
	s.Require().NoError(err)
	s.Equal(note.Title, shared.Title)

	otherOwner := receiverauth.AccessCapability{ReceiverID: s.capability.ReceiverID, OwnerID: id.OwnerID(uuid.New())}
	_, err = s.service.GetAfternote(s.ctx, otherOwner, note.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestOverview() {
	s.seedLetter(s.capability, "a", s.now)
	read := s.seedLetter(s.capability, "b", s.now.Add(time.Minute))
	s.store.SeedMindRecord(models.MindRecord{ID: id.MindRecordID(uuid.New()), OwnerID: s.capability.OwnerID, CreatedAt: s.now}, s.capability.ReceiverID)
	s.store.SeedAfternote(models.Afternote{ID: id.AfternoteID(uuid.New()), OwnerID: s.capability.OwnerID, CreatedAt: s.now}, s.stranger.ReceiverID)

	_, err := s.service.GetTimeLetter(s.ctx, s.capability, read.DeliveryID)
	s.Require().NoError(err)

	overview, err := s.service.Overview(s.ctx, s.capability)
	s.Require().NoError(err)
	s.Equal(models.Overview{TimeLetters: 2, UnreadTimeLetters: 1, MindRecords: 1, Afternotes: 0}, *overview)
}

type ServiceMockSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	receivers  *mocks.MockReceiverLookup
	service    *Service
	capability receiverauth.AccessCapability
}

func TestServiceMockSuite(t *testing.T) {
	suite.Run(t, new(ServiceMockSuite))
}

func (s *ServiceMockSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.receivers = mocks.NewMockReceiverLookup(s.ctrl)
	svc, err := New(s.store, WithSenderNames(s.receivers))
	s.Require().NoError(err)
	s.service = svc
	s.capability = receiverauth.AccessCapability{ReceiverID: id.ReceiverID(uuid.New()), OwnerID: id.OwnerID(uuid.New())}
}

func (s *ServiceMockSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceMockSuite) TestPageIsClamped() {
	s.receivers.EXPECT().FindByID(gomock.Any(), s.capability.ReceiverID).Return(&receiverauth.Receiver{SenderName: "Kim"}, nil)
	s.store.EXPECT().ListAfternotes(gomock.Any(), gomock.Any(), models.PageRequest{Limit: models.MaxPageLimit, Offset: 0}).
		Return([]*models.Afternote{}, 0, nil)
	_, err := s.service.ListAfternotes(context.Background(), s.capability, 5000, -3)
	s.Require().NoError(err)
}

func (s *ServiceMockSuite) TestRemovedReceiverIsUnauthorized() {
	s.receivers.EXPECT().FindByID(gomock.Any(), s.capability.ReceiverID).Return(nil, sentinel.ErrNotFound)
	_, err := s.service.ListMindRecords(context.Background(), s.capability, 0, 0)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *ServiceMockSuite) TestStoreFailureIsInternal() {
	s.receivers.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&receiverauth.Receiver{SenderName: "Kim"}, nil)
	s.store.EXPECT().FindMindRecord(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	_, err := s.service.GetMindRecord(context.Background(), s.capability, id.MindRecordID(uuid.New()))
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceMockSuite) TestOverviewFailsWhenAnyCountFails() {
	s.store.EXPECT().CountTimeLetters(gomock.Any(), gomock.Any()).Return(3, 1, nil)
	s.store.EXPECT().CountMindRecords(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))
	s.store.EXPECT().CountAfternotes(gomock.Any(), gomock.Any()).Return(2, nil).AnyTimes()
	_, err := s.service.Overview(context.Background(), s.capability)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
