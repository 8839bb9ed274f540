package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"lyberate-settlement/internal/domain"
)

const (
	saleColumns    = 7
	paymentColumns = 10
)

// ImportedPayment is a payment row with the review state recorded in the file.
type ImportedPayment struct {
	Input  domain.PaymentInput
	Status domain.PaymentStatus
}

// CSVImporter reads bulk sales and payment files.
type CSVImporter struct{}

// NewCSVImporter creates a new importer instance.
func NewCSVImporter() *CSVImporter {
	return &CSVImporter{}
}

// ReadSales parses a sales file with the columns
// sellerId,agencyId,productId,currencyId,amount,prize,date and an optional weekId.
func (r *CSVImporter) ReadSales(ctx context.Context, path string) ([]domain.SaleInput, error) {
	var sales []domain.SaleInput
	err := readRecords(path, saleColumns, func(record []string) error {
		amount, err := decimal.NewFromString(record[4])
		if err != nil {
			return fmt.Errorf("could not parse amount '%s': %w", record[4], err)
		}
		prize, err := decimal.NewFromString(record[5])
		if err != nil {
			return fmt.Errorf("could not parse prize '%s': %w", record[5], err)
		}

		in := domain.SaleInput{
			SellerID:   record[0],
			AgencyID:   record[1],
			ProductID:  record[2],
			CurrencyID: record[3],
			Amount:     amount,
			Prize:      prize,
			Date:       record[6],
		}
		if len(record) > saleColumns {
			in.WeekID = record[7]
		}
		sales = append(sales, in)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// ReadPayments parses payment files with the columns
// vendorId,vendorName,sellerId,amount,currency,bank,method,reference,date,status.
// An empty status means pending.
func (r *CSVImporter) ReadPayments(ctx context.Context, paths []string) ([]ImportedPayment, error) {
	var payments []ImportedPayment

	for _, path := range paths {
		err := readRecords(path, paymentColumns, func(record []string) error {
			amount, err := decimal.NewFromString(record[3])
			if err != nil {
				return fmt.Errorf("could not parse amount '%s': %w", record[3], err)
			}

			status := domain.PaymentStatus(strings.ToLower(record[9]))
			switch status {
			case "":
				status = domain.PaymentPending
			case domain.PaymentPending, domain.PaymentApproved, domain.PaymentRejected:
			default:
				return fmt.Errorf("could not parse status '%s'", record[9])
			}

			payments = append(payments, ImportedPayment{
				Input: domain.PaymentInput{
					VendorID:   record[0],
					VendorName: record[1],
					SellerID:   record[2],
					Amount:     amount,
					Currency:   record[4],
					Bank:       record[5],
					Method:     domain.PaymentMethod(record[6]),
					Reference:  record[7],
					Date:       record[8],
				},
				Status: status,
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return payments, nil
}

// readRecords skips the header and hands every trimmed record with at least minColumns
// fields to parse.
func readRecords(path string, minColumns int, parse func(record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if len(record) < minColumns {
			return fmt.Errorf("%s line %d: expected %d columns, got %d", path, line, minColumns, len(record))
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if err := parse(record); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}
}
