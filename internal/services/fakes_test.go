package services

import (
	"time"

	"gorm.io/gorm"

	"smartadmin_backend/internal/models"
	chatmodels "smartadmin_backend/internal/models/chat"
	"smartadmin_backend/internal/repositories"
)

// Фейковые репозитории для юнит-тестов сервисов.

type fakeMessageRepo struct {
	created     []chatmodels.Message
	byRoom      map[string][]chatmodels.Message
	recent      map[string]chatmodels.Message
	unread      map[string]int64
	unreadRooms int64
	createErr   error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{
		byRoom: make(map[string][]chatmodels.Message),
		recent: make(map[string]chatmodels.Message),
		unread: make(map[string]int64),
	}
}

func (f *fakeMessageRepo) Create(message *chatmodels.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *message)
	f.byRoom[message.RoomID] = append(f.byRoom[message.RoomID], *message)
	return nil
}

func (f *fakeMessageRepo) ListByRoom(roomID string, limit int) ([]chatmodels.Message, error) {
	messages := f.byRoom[roomID]
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

func (f *fakeMessageRepo) MarkRead(roomID string, senderType chatmodels.SenderType) error {
	delete(f.unread, roomID)
	return nil
}

func (f *fakeMessageRepo) UnreadCountsByRoom(senderType chatmodels.SenderType) (map[string]int64, error) {
	return f.unread, nil
}

func (f *fakeMessageRepo) RecentPerRoom(maxScanned int) (map[string]chatmodels.Message, error) {
	return f.recent, nil
}

func (f *fakeMessageRepo) CountUnreadRooms(senderType chatmodels.SenderType) (int64, error) {
	return f.unreadRooms, nil
}

type fakeAdminRepo struct {
	admins    []*models.Admin
	lastLogin map[string]time.Time
}

func newFakeAdminRepo(admins ...*models.Admin) *fakeAdminRepo {
	return &fakeAdminRepo{admins: admins, lastLogin: make(map[string]time.Time)}
}

func (f *fakeAdminRepo) Create(admin *models.Admin) error {
	admin.ID = "admin-" + admin.Email
	f.admins = append(f.admins, admin)
	return nil
}

func (f *fakeAdminRepo) FindByEmail(email string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdminRepo) FindAny() (*models.Admin, error) {
	if len(f.admins) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return f.admins[0], nil
}

func (f *fakeAdminRepo) UpdateLastLogin(id string, at time.Time) error {
	f.lastLogin[id] = at
	return nil
}

type fakeCostRepo struct {
	costs []models.Cost
}

func (f *fakeCostRepo) Create(cost *models.Cost) error {
	cost.ID = "cost-1"
	f.costs = append(f.costs, *cost)
	return nil
}

func (f *fakeCostRepo) FindInRange(start, end *time.Time) ([]models.Cost, error) {
	var out []models.Cost
	for _, c := range f.costs {
		if start != nil && c.Date.Before(*start) {
			continue
		}
		if end != nil && c.Date.After(*end) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type fakePaymentRepo struct {
	completed []models.Payment
	bulk      []models.Payment
	bulkCount int64
	monthSum  int64
}

func (f *fakePaymentRepo) FindCompleted(filters repositories.PaymentFilters) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.completed {
		if filters.Source != "" && p.Source != filters.Source {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentRepo) BulkCreate(payments []models.Payment) (int64, error) {
	f.bulk = payments
	if f.bulkCount > 0 {
		return f.bulkCount, nil
	}
	return int64(len(payments)), nil
}

func (f *fakePaymentRepo) SumCompletedSince(since time.Time) (int64, error) {
	return f.monthSum, nil
}

func (f *fakePaymentRepo) DailyRevenue(days int) ([]repositories.DailyRevenue, error) {
	return nil, nil
}

func (f *fakePaymentRepo) PackageSales() ([]repositories.PackageSales, error) {
	return nil, nil
}

func (f *fakePaymentRepo) SourceBreakdown() ([]repositories.SourceBreakdown, error) {
	return nil, nil
}

type fakeMemberRepo struct {
	members     []models.Member
	activeCount int64
}

func (f *fakeMemberRepo) FindWithFilters(filters repositories.MemberFilters) ([]models.Member, int64, error) {
	return f.members, int64(len(f.members)), nil
}

func (f *fakeMemberRepo) FindByID(id string) (*models.Member, error) {
	for i := range f.members {
		if f.members[i].ID == id {
			return &f.members[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMemberRepo) FindByIDs(ids []string) ([]models.Member, error) {
	var out []models.Member
	for _, id := range ids {
		for _, m := range f.members {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (f *fakeMemberRepo) Update(member *models.Member) error {
	return nil
}

func (f *fakeMemberRepo) CountActive() (int64, error) {
	return f.activeCount, nil
}

func (f *fakeMemberRepo) DailySignups(days int) ([]repositories.DailyCount, error) {
	return nil, nil
}

type fakeReviewRepo struct {
	reviews []models.Review
	avg     float64
	updated *models.Review
}

func (f *fakeReviewRepo) FindAll() ([]models.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) FindByID(id string) (*models.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			return &f.reviews[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewRepo) Update(review *models.Review) error {
	f.updated = review
	return nil
}

func (f *fakeReviewRepo) AverageVisibleRating() (float64, error) {
	return f.avg, nil
}

type fakePackageRepo struct {
	packages []models.Package
	updated  *models.Package
}

func (f *fakePackageRepo) FindAllOrdered() ([]models.Package, error) {
	return f.packages, nil
}

func (f *fakePackageRepo) FindByID(id string) (*models.Package, error) {
	for i := range f.packages {
		if f.packages[i].ID == id {
			return &f.packages[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePackageRepo) Update(pkg *models.Package) error {
	f.updated = pkg
	return nil
}

type fakeNotifier struct {
	sent []string // адреса получателей
	err  error
}

func (f *fakeNotifier) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}
