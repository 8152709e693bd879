package v1

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/models"
)

// csvColumns is the fixed column set for transaction export and import.
// Tags are joined with a pipe so that the file stays a plain
// single-delimiter CSV.
var csvColumns = []string{
	"id", "date", "amount", "currency", "type", "category_id", "account",
	"tags", "vendor", "client", "project_id", "invoice_id", "receipt_url",
	"reconciled", "notes",
}

// @Summary		Export transactions
// @Description	Streams the caller's transactions as a CSV file. Admins export all users' transactions.
// @Tags			Transactions
// @Produce		text/csv
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/transactions/export.csv [get]
func ExportTransactions(c *gin.Context) {
	var transactions []models.Transaction
	err := scopedTransactions(c).Order("datetime(date) DESC, datetime(created_at) DESC").Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write(csvColumns)

	for _, t := range transactions {
		_ = writer.Write([]string{
			t.ID.String(),
			t.Date.Format(time.RFC3339),
			t.Amount.String(),
			t.Currency,
			string(t.Type),
			t.CategoryID,
			t.Account,
			strings.Join(t.Tags, "|"),
			t.Vendor,
			t.Client,
			t.ProjectID,
			t.InvoiceID,
			t.ReceiptURL,
			strconv.FormatBool(t.Reconciled),
			t.Notes,
		})
	}

	writer.Flush()
}

// @Summary		Import transactions
// @Description	Imports transactions from a CSV file with the same columns as the export. Rows without a positive amount are skipped.
// @Tags			Transactions
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			file	formData	file	true	"CSV file"
// @Router			/v1/transactions/import.csv [post]
func ImportTransactions(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errNoFilePost.Error()})
		return
	}

	if !strings.HasSuffix(formFile.Filename, ".csv") {
		c.JSON(http.StatusBadRequest, httpError{Error: errWrongFileType.Error()})
		return
	}

	file, err := formFile.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if len(records) < 2 {
		c.JSON(http.StatusBadRequest, httpError{Error: errNoRowsInCSV.Error()})
		return
	}

	// The header decides which column holds which value, so that
	// reordered or partial files still import
	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}

	column := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	userID := identityFrom(c).UserID

	var imported int
	for _, record := range records[1:] {
		amount, err := decimal.NewFromString(column(record, "amount"))
		if err != nil || !amount.IsPositive() {
			continue
		}

		transactionType := models.TransactionType(column(record, "type"))
		if transactionType == "" {
			transactionType = models.TypeExpense
		}
		if !transactionType.Valid() {
			continue
		}

		transaction := models.Transaction{
			UserID:     userID,
			Amount:     amount,
			Currency:   column(record, "currency"),
			Type:       transactionType,
			CategoryID: column(record, "category_id"),
			Account:    column(record, "account"),
			Tags:       parseTags([]string{column(record, "tags")}),
			Vendor:     column(record, "vendor"),
			Client:     column(record, "client"),
			ProjectID:  column(record, "project_id"),
			InvoiceID:  column(record, "invoice_id"),
			ReceiptURL: column(record, "receipt_url"),
			Reconciled: column(record, "reconciled") == "true",
			Notes:      column(record, "notes"),
		}

		if v := column(record, "date"); v != "" {
			date, err := parseDate(v)
			if err != nil {
				continue
			}
			transaction.Date = date
		}

		if err := models.DB.Create(&transaction).Error; err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		imported++
	}

	c.JSON(http.StatusCreated, ImportResponse{Imported: imported})
}
