package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kbryant/sendlater/internal/models"
	"github.com/kbryant/sendlater/internal/notifier"
	"github.com/kbryant/sendlater/internal/receipt"
	"github.com/kbryant/sendlater/internal/repository"
	"github.com/kbryant/sendlater/internal/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type sentCall struct {
	To   string
	Body string
}

type mockNotifier struct {
	mu     sync.Mutex
	calls  []sentCall
	failTo map[string]bool
}

func (m *mockNotifier) Send(_ context.Context, to, body string) (notifier.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTo[to] {
		return notifier.Receipt{}, errors.New("provider unavailable")
	}
	m.calls = append(m.calls, sentCall{To: to, Body: body})
	return notifier.Receipt{ProviderID: "SM" + to, SentAt: time.Now().UTC()}, nil
}

func (m *mockNotifier) sent() []sentCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentCall(nil), m.calls...)
}

type SweepServiceTestSuite struct {
	suite.Suite
	testDB    *testutil.TestDatabase
	testRedis *testutil.TestRedis
	redisC    *redis.Client
	repo      *repository.MessageRepository
	notifier  *mockNotifier
	sweep     *SweepService

	// fixed clock: 2024-03-01 12:00:00 UTC
	now time.Time
}

func (s *SweepServiceTestSuite) SetupSuite() {
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.testRedis = testutil.SetupTestRedis(s.T())

	opt, err := redis.ParseURL(s.testRedis.URL)
	s.Require().NoError(err)
	s.redisC = redis.NewClient(opt)

	s.repo = repository.NewMessageRepository(s.testDB.DB)
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *SweepServiceTestSuite) TearDownSuite() {
	s.redisC.Close()
	s.testRedis.Teardown(s.T())
	s.testDB.Teardown(s.T())
}

func (s *SweepServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
	s.testRedis.Server.FlushAll()

	s.notifier = &mockNotifier{failTo: map[string]bool{}}
	s.sweep = NewSweepService(s.repo, s.notifier, receipt.NewStore(s.redisC), zap.NewNop())
	s.sweep.now = func() time.Time { return s.now }
}

func (s *SweepServiceTestSuite) seedMessage(owner, phone, sendTime string, sent bool) *models.Message {
	msg := testutil.CreateTestMessage(owner, sendTime)
	msg.OutgoingPhone = phone
	msg.Sent = sent
	s.Require().NoError(s.repo.Create(msg))
	return msg
}

func (s *SweepServiceTestSuite) TestSendsDueMessageOnce() {
	msg := s.seedMessage("alice", "+15005550001", "2024-03-01T09:00:00", false)

	report, err := s.sweep.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(1, report.Matched)
	s.Equal(1, report.Sent)
	s.Equal(0, report.Failed)

	calls := s.notifier.sent()
	s.Require().Len(calls, 1)
	s.Equal("+15005550001", calls[0].To)
	s.Equal("hello from alice -alice", calls[0].Body)

	stored, err := s.repo.GetByID(msg.ID)
	s.Require().NoError(err)
	s.True(stored.Sent)

	// second pass: nothing left to send
	report, err = s.sweep.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(0, report.Matched)
	s.Len(s.notifier.sent(), 1)
}

func (s *SweepServiceTestSuite) TestAlreadySentMessagesAreSkipped() {
	s.seedMessage("alice", "+15005550001", "2024-03-01T09:00:00", true)
	s.seedMessage("bob", "+15005550002", "2024-03-01T10:00:00", true)

	report, err := s.sweep.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(0, report.Matched)
	s.Empty(s.notifier.sent())
}

func (s *SweepServiceTestSuite) TestFutureMessageNotYetDue() {
	s.seedMessage("alice", "+15005550001", "2024-03-01T18:00:00", false)

	report, err := s.sweep.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(0, report.Matched)
	s.Empty(s.notifier.sent())
}

func (s *SweepServiceTestSuite) TestYesterdaysPartitionIsNotRevisited() {
	// the due query only looks at today's calendar-day partition
	s.seedMessage("alice", "+15005550001", "2024-02-29T09:00:00", false)

	report, err := s.sweep.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(0, report.Matched)
	s.Empty(s.notifier.sent())
}

func (s *SweepServiceTestSuite) TestFailedSendLeavesMessageUnsent() {
	failed := s.seedMessage("alice", "+15005550001", "2024-03-01T09:00:00", false)
	ok := s.seedMessage("bob", "+15005550002", "2024-03-01T10:00:00", false)
	s.notifier.failTo["+15005550001"] = true

	report, err := s.sweep.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(2, report.Matched)
	s.Equal(1, report.Sent)
	s.Equal(1, report.Failed)

	storedFailed, err := s.repo.GetByID(failed.ID)
	s.Require().NoError(err)
	s.False(storedFailed.Sent)

	storedOK, err := s.repo.GetByID(ok.ID)
	s.Require().NoError(err)
	s.True(storedOK.Sent)

	// provider recovers; only the failed message goes out on the next pass
	s.notifier.failTo = map[string]bool{}
	report, err = s.sweep.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(1, report.Matched)
	s.Equal(1, report.Sent)
}

func (s *SweepServiceTestSuite) TestReceiptStoredAfterSuccessfulSend() {
	msg := s.seedMessage("alice", "+15005550001", "2024-03-01T09:00:00", false)

	_, err := s.sweep.Run(context.Background())
	s.Require().NoError(err)

	fields, err := receipt.NewStore(s.redisC).Get(context.Background(), msg.ID)
	s.Require().NoError(err)
	s.Equal("SM+15005550001", fields["provider_sid"])
	s.Equal(msg.ID, fields["message_id"])
	s.NotEmpty(fields["sent_at"])
}

func TestSweepServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SweepServiceTestSuite))
}

func TestCutoffComparesLexically(t *testing.T) {
	// a send_time at the same second as the cutoff must count as due
	assert.True(t, "2024-03-01T12:00:00" <= "2024-03-01T12:00:00Z")
	assert.False(t, "2024-03-01T12:00:01" <= "2024-03-01T12:00:00Z")
}
