package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lyberate-settlement/internal/domain"
)

// maxWeekCount caps the week list at two years.
const maxWeekCount = 104

type weekView struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Start        time.Time `json:"start"`
	EndExclusive time.Time `json:"endExclusive"`
}

type statusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

type rejectRequest struct {
	Note string `json:"note"`
}

type agencyRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleListWeeks returns the selectable periods, current week first.
func (s *Server) handleListWeeks(c *gin.Context) {
	count := s.app.WeekCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxWeekCount {
			errorResponse(c, http.StatusBadRequest, "count must be between 1 and "+strconv.Itoa(maxWeekCount))
			return
		}
		count = n
	}

	weeks := s.app.Closing.Weeks(count)
	views := make([]weekView, 0, len(weeks))
	for _, w := range weeks {
		views = append(views, weekView{ID: w.ID, Label: w.Label(), Start: w.Start, EndExclusive: w.EndExclusive})
	}
	c.JSON(http.StatusOK, views)
}

func (s *Server) handleWeeklyClosing(c *gin.Context) {
	report, err := s.app.Closing.WeeklyClosing(c.Request.Context(), c.Param("weekId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleWeekTickets(c *gin.Context) {
	tickets, err := s.app.Tickets.TicketsByWeek(c.Request.Context(), c.Param("weekId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (s *Server) handleGenerateWeekTickets(c *gin.Context) {
	tickets, err := s.app.Tickets.GenerateWeekTickets(c.Request.Context(), c.Param("weekId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (s *Server) handleGenerateTicket(c *gin.Context) {
	ticket, err := s.app.Tickets.GenerateTicket(c.Request.Context(), c.Param("weekId"), c.Param("sellerId"), c.Param("currency"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (s *Server) handleSettleTicket(c *gin.Context) {
	if err := s.app.Tickets.Liquidate(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSetTicketStatus(c *gin.Context) {
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.app.Tickets.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSalesReport(c *gin.Context) {
	report, err := s.app.Sales.SalesReport(c.Request.Context(), c.Param("weekId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleRecordSale(c *gin.Context) {
	var in domain.SaleInput
	if !bindJSON(c, &in) {
		return
	}
	sale, err := s.app.Sales.RecordSale(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// handleListPayments filters by ?status=pending or ?vendorId=, otherwise lists everything.
func (s *Server) handleListPayments(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		payments []domain.Payment
		err      error
	)
	switch {
	case c.Query("status") == string(domain.PaymentPending):
		payments, err = s.app.Payments.PendingPayments(ctx)
	case c.Query("vendorId") != "":
		payments, err = s.app.Payments.PaymentsByVendor(ctx, c.Query("vendorId"))
	default:
		payments, err = s.app.Payments.Payments(ctx)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (s *Server) handleSubmitPayment(c *gin.Context) {
	var in domain.PaymentInput
	if !bindJSON(c, &in) {
		return
	}
	payment, err := s.app.Payments.SubmitPayment(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (s *Server) handleApprovePayment(c *gin.Context) {
	payment, err := s.app.Payments.ApprovePayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (s *Server) handleRejectPayment(c *gin.Context) {
	var req rejectRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	payment, err := s.app.Payments.RejectPayment(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (s *Server) handleListSellers(c *gin.Context) {
	sellers, err := s.app.Catalog.ListSellers(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sellers)
}

func (s *Server) handleRegisterSeller(c *gin.Context) {
	var in domain.SellerInput
	if !bindJSON(c, &in) {
		return
	}
	seller, err := s.app.Catalog.RegisterSeller(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, seller)
}

func (s *Server) handleGetSeller(c *gin.Context) {
	seller, err := s.app.Catalog.GetSeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, seller)
}

func (s *Server) handleVendorStatement(c *gin.Context) {
	statement, err := s.app.Statement.VendorStatement(c.Request.Context(), c.Param("id"), c.Query("vendorId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, statement)
}

func (s *Server) handleAddAgency(c *gin.Context) {
	var req agencyRequest
	if !bindJSON(c, &req) {
		return
	}
	s.respondSeller(c)(s.app.Catalog.AddAgency(c.Request.Context(), c.Param("id"), req.Name))
}

func (s *Server) handleAddProduct(c *gin.Context) {
	var in domain.ProductInput
	if !bindJSON(c, &in) {
		return
	}
	s.respondSeller(c)(s.app.Catalog.AddProduct(c.Request.Context(), c.Param("id"), in))
}

func (s *Server) handleRemoveProduct(c *gin.Context) {
	s.respondSeller(c)(s.app.Catalog.RemoveProduct(c.Request.Context(), c.Param("id"), c.Param("productId")))
}

func (s *Server) handleAddCurrency(c *gin.Context) {
	var in domain.CurrencyInput
	if !bindJSON(c, &in) {
		return
	}
	s.respondSeller(c)(s.app.Catalog.AddCurrency(c.Request.Context(), c.Param("id"), c.Param("productId"), in))
}

func (s *Server) handleRemoveCurrency(c *gin.Context) {
	s.respondSeller(c)(s.app.Catalog.RemoveCurrency(c.Request.Context(), c.Param("id"), c.Param("productId"), c.Param("currencyId")))
}

// respondSeller writes the updated seller of a catalog mutation.
func (s *Server) respondSeller(c *gin.Context) func(*domain.Seller, error) {
	return func(seller *domain.Seller, err error) {
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}
