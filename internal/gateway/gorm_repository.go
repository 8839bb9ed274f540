package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"lyberate-settlement/internal/domain"
)

type saleRecord struct {
	ID            string          `gorm:"primaryKey;size:64"`
	SellerID      string          `gorm:"index;size:64"`
	SellerName    string          `gorm:"size:255"`
	AgencyID      string          `gorm:"size:64"`
	AgencyName    string          `gorm:"size:255"`
	ProductID     string          `gorm:"size:64"`
	ProductName   string          `gorm:"size:255"`
	CurrencyID    string          `gorm:"size:64"`
	CurrencyName  string          `gorm:"size:64"`
	Amount        decimal.Decimal `gorm:"type:decimal(65,30)"`
	Prize         decimal.Decimal `gorm:"type:decimal(65,30)"`
	Commission    decimal.Decimal `gorm:"type:decimal(65,30)"`
	Total         decimal.Decimal `gorm:"type:decimal(65,30)"`
	Participation decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalVendor   decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalBank     decimal.Decimal `gorm:"type:decimal(65,30)"`
	Date          string          `gorm:"size:10"`
	WeekID        string          `gorm:"index;size:32"`
	RegisteredAt  time.Time
	CreatedAt     time.Time
}

func (saleRecord) TableName() string { return "sales" }

type paymentRecord struct {
	ID               string          `gorm:"primaryKey;size:64"`
	VendorID         string          `gorm:"index;size:64"`
	VendorName       string          `gorm:"size:255"`
	AgencyName       string          `gorm:"size:255"`
	SellerID         string          `gorm:"index;size:64"`
	Week             string          `gorm:"size:64"`
	WeekID           string          `gorm:"index;size:32"`
	Amount           decimal.Decimal `gorm:"type:decimal(65,30)"`
	Currency         string          `gorm:"size:32"`
	Bank             string          `gorm:"size:128"`
	Method           string          `gorm:"size:32"`
	Reference        string          `gorm:"size:128"`
	Date             string          `gorm:"size:10"`
	Status           string          `gorm:"index;size:16"`
	ProofImageBase64 string          `gorm:"type:text"`
	ProofMimeType    string          `gorm:"size:64"`
	AdminNote        string          `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
}

func (paymentRecord) TableName() string { return "payments" }

type sellerRecord struct {
	ID        string           `gorm:"primaryKey;size:64"`
	Name      string           `gorm:"size:255"`
	IDNumber  string           `gorm:"size:64"`
	Phone     string           `gorm:"size:64"`
	Agencies  []domain.Agency  `gorm:"serializer:json"`
	Products  []domain.Product `gorm:"serializer:json"`
	CreatedAt time.Time
}

func (sellerRecord) TableName() string { return "sellers" }

type ticketRecord struct {
	ID                 string          `gorm:"primaryKey;size:64"`
	SellerID           string          `gorm:"uniqueIndex:idx_ticket_key;size:64"`
	SellerName         string          `gorm:"size:255"`
	WeekID             string          `gorm:"uniqueIndex:idx_ticket_key;size:32"`
	WeekLabel          string          `gorm:"size:64"`
	TotalSales         decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalPrize         decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalCommission    decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalNet           decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalParticipation decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalVendor        decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalBank          decimal.Decimal `gorm:"type:decimal(65,30)"`
	TotalPaid          decimal.Decimal `gorm:"type:decimal(65,30)"`
	Balance            decimal.Decimal `gorm:"type:decimal(65,30)"`
	Currency           string          `gorm:"uniqueIndex:idx_ticket_key;size:64"`
	Status             string          `gorm:"size:16"`
	CreatedAt          time.Time
	UpdatedAt          time.Time `gorm:"autoUpdateTime:false"`
}

func (ticketRecord) TableName() string { return "weekly_tickets" }

// OpenDatabase connects to postgres or mysql.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: could not connect to %s: %w", domain.ErrStorage, driver, err)
	}
	return db, nil
}

// GormRepository stores every collection in its own SQL table.
type GormRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewGormRepository migrates the schema and returns the repository.
func NewGormRepository(db *gorm.DB, logger zerolog.Logger) (*GormRepository, error) {
	if err := db.AutoMigrate(&saleRecord{}, &paymentRecord{}, &sellerRecord{}, &ticketRecord{}); err != nil {
		return nil, fmt.Errorf("%w: could not migrate schema: %w", domain.ErrStorage, err)
	}
	return &GormRepository{
		db:     db,
		logger: logger.With().Str("component", "gorm_repository").Logger(),
	}, nil
}

func dbError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// ListSales returns every sale in registration order.
func (r *GormRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	var records []saleRecord
	if err := r.db.WithContext(ctx).Order("registered_at, id").Find(&records).Error; err != nil {
		return nil, dbError("could not list sales", err)
	}
	sales := make([]domain.Sale, 0, len(records))
	for _, rec := range records {
		sales = append(sales, rec.toDomain())
	}
	return sales, nil
}

// AddSale inserts a sale.
func (r *GormRepository) AddSale(ctx context.Context, sale domain.Sale) error {
	rec := newSaleRecord(sale)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return dbError("could not insert sale", err)
	}
	return nil
}

// ListPayments returns payments newest first.
func (r *GormRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var records []paymentRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, dbError("could not list payments", err)
	}
	payments := make([]domain.Payment, 0, len(records))
	for _, rec := range records {
		payments = append(payments, rec.toDomain())
	}
	return payments, nil
}

// GetPayment finds a payment by id.
func (r *GormRepository) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	var rec paymentRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		return nil, dbError("payment "+id, err)
	}
	p := rec.toDomain()
	return &p, nil
}

// AddPayment inserts a payment.
func (r *GormRepository) AddPayment(ctx context.Context, payment domain.Payment) error {
	rec := newPaymentRecord(payment)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return dbError("could not insert payment", err)
	}
	return nil
}

// UpdatePaymentStatus changes the approval state of a payment. A non-empty note replaces
// the admin note.
func (r *GormRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, note string, updatedAt time.Time) (*domain.Payment, error) {
	var rec paymentRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(forUpdate()).Where("id = ?", id).Take(&rec).Error; err != nil {
			return dbError("payment "+id, err)
		}
		rec.Status = string(status)
		if note != "" {
			rec.AdminNote = note
		}
		rec.UpdatedAt = updatedAt
		if err := tx.Save(&rec).Error; err != nil {
			return dbError("could not update payment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p := rec.toDomain()
	return &p, nil
}

// ListSellers returns every seller in creation order.
func (r *GormRepository) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	var records []sellerRecord
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, dbError("could not list sellers", err)
	}
	sellers := make([]domain.Seller, 0, len(records))
	for _, rec := range records {
		sellers = append(sellers, rec.toDomain())
	}
	return sellers, nil
}

// GetSeller finds a seller by id.
func (r *GormRepository) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	var rec sellerRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		return nil, dbError("seller "+id, err)
	}
	s := rec.toDomain()
	return &s, nil
}

// AddSeller inserts a seller.
func (r *GormRepository) AddSeller(ctx context.Context, seller domain.Seller) error {
	rec := newSellerRecord(seller)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return dbError("could not insert seller", err)
	}
	return nil
}

// UpdateSeller applies mutate to the locked seller row. Nothing is written when mutate fails.
func (r *GormRepository) UpdateSeller(ctx context.Context, id string, mutate func(*domain.Seller) error) (*domain.Seller, error) {
	var seller domain.Seller
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec sellerRecord
		if err := tx.Clauses(forUpdate()).Where("id = ?", id).Take(&rec).Error; err != nil {
			return dbError("seller "+id, err)
		}
		seller = rec.toDomain()
		if err := mutate(&seller); err != nil {
			return err
		}
		rec = newSellerRecord(seller)
		if err := tx.Save(&rec).Error; err != nil {
			return dbError("could not update seller", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// ListWeeklyTickets returns every ticket.
func (r *GormRepository) ListWeeklyTickets(ctx context.Context) ([]domain.WeeklyTicket, error) {
	var records []ticketRecord
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, dbError("could not list weekly tickets", err)
	}
	tickets := make([]domain.WeeklyTicket, 0, len(records))
	for _, rec := range records {
		tickets = append(tickets, rec.toDomain())
	}
	return tickets, nil
}

// GetWeeklyTicket finds the ticket of a seller, week and currency.
func (r *GormRepository) GetWeeklyTicket(ctx context.Context, key domain.TicketKey) (*domain.WeeklyTicket, error) {
	var rec ticketRecord
	if err := ticketByKey(r.db.WithContext(ctx), key).Take(&rec).Error; err != nil {
		return nil, dbError(fmt.Sprintf("ticket %s/%s/%s", key.SellerID, key.WeekID, key.Currency), err)
	}
	t := rec.toDomain()
	return &t, nil
}

// PutWeeklyTicket inserts the ticket or replaces the one with the same key.
func (r *GormRepository) PutWeeklyTicket(ctx context.Context, ticket domain.WeeklyTicket) error {
	_, err := r.UpsertWeeklyTicket(ctx, ticket.Key(), func(*domain.WeeklyTicket) domain.WeeklyTicket {
		return ticket
	})
	return err
}

// UpsertWeeklyTicket builds the ticket for key from the locked existing row, if any, and
// writes it back under the existing id. New tickets are inserted with ON CONFLICT on the
// key index, so a concurrent insert of the same key keeps the stored id and creation time.
func (r *GormRepository) UpsertWeeklyTicket(ctx context.Context, key domain.TicketKey, build func(existing *domain.WeeklyTicket) domain.WeeklyTicket) (*domain.WeeklyTicket, error) {
	var saved ticketRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing *domain.WeeklyTicket
		var rec ticketRecord
		err := ticketByKey(tx.Clauses(forUpdate()), key).Take(&rec).Error
		switch {
		case err == nil:
			t := rec.toDomain()
			existing = &t
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return dbError("could not read weekly ticket", err)
		}

		next := newTicketRecord(build(existing))
		if existing != nil {
			next.ID = existing.ID
			if err := tx.Save(&next).Error; err != nil {
				return dbError("could not update weekly ticket", err)
			}
		} else {
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "seller_id"}, {Name: "week_id"}, {Name: "currency"}},
				UpdateAll: true,
			}).Create(&next).Error
			if err != nil {
				return dbError("could not insert weekly ticket", err)
			}
		}
		if err := ticketByKey(tx, key).Take(&saved).Error; err != nil {
			return dbError("could not reload weekly ticket", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	t := saved.toDomain()
	r.logger.Debug().Str("ticket_id", t.ID).Str("week_id", key.WeekID).Msg("ticket stored")
	return &t, nil
}

// SetWeeklyTicketStatus overwrites the status of the ticket with id.
func (r *GormRepository) SetWeeklyTicketStatus(ctx context.Context, id string, status domain.TicketStatus, updatedAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&ticketRecord{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": updatedAt,
	})
	if res.Error != nil {
		return dbError("could not update ticket status", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func ticketByKey(db *gorm.DB, key domain.TicketKey) *gorm.DB {
	return db.Where("seller_id = ? AND week_id = ? AND currency = ?", key.SellerID, key.WeekID, key.Currency)
}

func newSaleRecord(s domain.Sale) saleRecord {
	return saleRecord{
		ID: s.ID, SellerID: s.SellerID, SellerName: s.SellerName,
		AgencyID: s.AgencyID, AgencyName: s.AgencyName,
		ProductID: s.ProductID, ProductName: s.ProductName,
		CurrencyID: s.CurrencyID, CurrencyName: s.CurrencyName,
		Amount: s.Amount, Prize: s.Prize, Commission: s.Commission, Total: s.Total,
		Participation: s.Participation, TotalVendor: s.TotalVendor, TotalBank: s.TotalBank,
		Date: s.Date, WeekID: s.WeekID, RegisteredAt: s.RegisteredAt, CreatedAt: s.CreatedAt,
	}
}

func (rec saleRecord) toDomain() domain.Sale {
	return domain.Sale{
		ID: rec.ID, SellerID: rec.SellerID, SellerName: rec.SellerName,
		AgencyID: rec.AgencyID, AgencyName: rec.AgencyName,
		ProductID: rec.ProductID, ProductName: rec.ProductName,
		CurrencyID: rec.CurrencyID, CurrencyName: rec.CurrencyName,
		Amount: rec.Amount, Prize: rec.Prize, Commission: rec.Commission, Total: rec.Total,
		Participation: rec.Participation, TotalVendor: rec.TotalVendor, TotalBank: rec.TotalBank,
		Date: rec.Date, WeekID: rec.WeekID, RegisteredAt: rec.RegisteredAt, CreatedAt: rec.CreatedAt,
	}
}

func newPaymentRecord(p domain.Payment) paymentRecord {
	return paymentRecord{
		ID: p.ID, VendorID: p.VendorID, VendorName: p.VendorName, AgencyName: p.AgencyName,
		SellerID: p.SellerID, Week: p.Week, WeekID: p.WeekID,
		Amount: p.Amount, Currency: p.Currency, Bank: p.Bank, Method: string(p.Method),
		Reference: p.Reference, Date: p.Date, Status: string(p.Status),
		ProofImageBase64: p.ProofImageBase64, ProofMimeType: p.ProofMimeType, AdminNote: p.AdminNote,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func (rec paymentRecord) toDomain() domain.Payment {
	return domain.Payment{
		ID: rec.ID, VendorID: rec.VendorID, VendorName: rec.VendorName, AgencyName: rec.AgencyName,
		SellerID: rec.SellerID, Week: rec.Week, WeekID: rec.WeekID,
		Amount: rec.Amount, Currency: rec.Currency, Bank: rec.Bank, Method: domain.PaymentMethod(rec.Method),
		Reference: rec.Reference, Date: rec.Date, Status: domain.PaymentStatus(rec.Status),
		ProofImageBase64: rec.ProofImageBase64, ProofMimeType: rec.ProofMimeType, AdminNote: rec.AdminNote,
		CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
	}
}

func newSellerRecord(s domain.Seller) sellerRecord {
	return sellerRecord{
		ID: s.ID, Name: s.Name, IDNumber: s.IDNumber, Phone: s.Phone,
		Agencies: s.Agencies, Products: s.Products, CreatedAt: s.CreatedAt,
	}
}

func (rec sellerRecord) toDomain() domain.Seller {
	return domain.Seller{
		ID: rec.ID, Name: rec.Name, IDNumber: rec.IDNumber, Phone: rec.Phone,
		Agencies: rec.Agencies, Products: rec.Products, CreatedAt: rec.CreatedAt,
	}
}

func newTicketRecord(t domain.WeeklyTicket) ticketRecord {
	return ticketRecord{
		ID: t.ID, SellerID: t.SellerID, SellerName: t.SellerName, WeekID: t.WeekID, WeekLabel: t.WeekLabel,
		TotalSales: t.TotalSales, TotalPrize: t.TotalPrize, TotalCommission: t.TotalCommission,
		TotalNet: t.TotalNet, TotalParticipation: t.TotalParticipation, TotalVendor: t.TotalVendor,
		TotalBank: t.TotalBank, TotalPaid: t.TotalPaid, Balance: t.Balance,
		Currency: t.Currency, Status: string(t.Status), CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt,
	}
}

func (rec ticketRecord) toDomain() domain.WeeklyTicket {
	return domain.WeeklyTicket{
		ID: rec.ID, SellerID: rec.SellerID, SellerName: rec.SellerName, WeekID: rec.WeekID, WeekLabel: rec.WeekLabel,
		TotalSales: rec.TotalSales, TotalPrize: rec.TotalPrize, TotalCommission: rec.TotalCommission,
		TotalNet: rec.TotalNet, TotalParticipation: rec.TotalParticipation, TotalVendor: rec.TotalVendor,
		TotalBank: rec.TotalBank, TotalPaid: rec.TotalPaid, Balance: rec.Balance,
		Currency: rec.Currency, Status: domain.TicketStatus(rec.Status), CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt,
	}
}
