package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/authz"
	"github.com/ledgerline/backend/internal/filter"
	"github.com/ledgerline/backend/internal/httputil"
	"github.com/ledgerline/backend/internal/models"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List transactions
// @Description	Returns the caller's transactions, newest first. Admins see all users' transactions.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/transactions [get]
// @Param			type		query	string	false	"Filter by type"
// @Param			account		query	string	false	"Filter by account"
// @Param			categoryId	query	string	false	"Filter by category"
// @Param			tag			query	string	false	"Filter by tag"
// @Param			reconciled	query	string	false	"Filter by reconciliation state"
// @Param			from		query	string	false	"Start date (inclusive)"
// @Param			to			query	string	false	"End date (inclusive)"
// @Param			q			query	string	false	"Free text search"
func GetTransactions(c *gin.Context) {
	var f filter.Filter
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var transactions []models.Transaction
	err := scopedTransactions(c).Order("datetime(date) DESC, datetime(created_at) DESC").Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	transactions = f.Apply(transactions)

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(c, t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Create transaction
// @Description	Creates a new transaction. Accepts JSON or multipart form data with an optional receipt file.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	var err error

	if isMultipart(c) {
		editable, err = transactionFromForm(c)
		if err == nil {
			var receiptURL string
			receiptURL, err = saveReceipt(c)
			if receiptURL != "" {
				editable.ReceiptURL = receiptURL
			}
		}
	} else {
		err = httputil.BindData(c, &editable)
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	transaction := editable.model(identityFrom(c).UserID)
	err = models.DB.Create(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: newTransaction(c, transaction)})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httpError
// @Failure		403	{object}	forbiddenError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, ok := transactionResource(c, authz.ActionView)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(c, transaction)})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only the fields in the request body are changed.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		403			{object}	forbiddenError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [put]
func UpdateTransaction(c *gin.Context) {
	transaction, ok := transactionResource(c, authz.ActionUpdate)
	if !ok {
		return
	}

	var data TransactionEditable
	var updateFields []any
	var err error

	if isMultipart(c) {
		updateFields = httputil.GetFormFields(c, TransactionEditable{})
		data, err = transactionFromForm(c)
		if err == nil {
			var receiptURL string
			receiptURL, err = saveReceipt(c)
			if receiptURL != "" {
				data.ReceiptURL = receiptURL
				updateFields = append(updateFields, "ReceiptURL")
			}
		}
	} else {
		updateFields, err = httputil.GetBodyFields(c, TransactionEditable{})
		if err == nil {
			err = httputil.BindData(c, &data)
		}
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(data.model(transaction.UserID)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(c, transaction)})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	forbiddenError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, ok := transactionResource(c, authz.ActionDelete)
	if !ok {
		return
	}

	err := models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// scopedTransactions returns a query over the transactions the caller
// may see: everything for admins, only their own rows for everyone else.
func scopedTransactions(c *gin.Context) *gorm.DB {
	identity := identityFrom(c)

	db := models.DB.Model(&models.Transaction{})
	if identity.Role != models.RoleAdmin {
		db = db.Where("user_id = ?", identity.UserID)
	}

	return db
}

// transactionResource loads the transaction from the URI and enforces
// ownership. On failure the response has already been written.
func transactionResource(c *gin.Context, action authz.Action) (models.Transaction, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return models.Transaction{}, false
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.Transaction{}, false
	}

	if !ownerAllowed(identityFrom(c), transaction.UserID) {
		denyNotOwner(c, authz.ResourceTransactions, action)
		return models.Transaction{}, false
	}

	return transaction, true
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// transactionFromForm reads a transaction from multipart form fields.
//
// Dates are accepted as RFC 3339 or as plain days, amounts in the usual
// decimal notation and tags either as repeated fields or pipe-separated.
func transactionFromForm(c *gin.Context) (TransactionEditable, error) {
	var editable TransactionEditable

	if v := c.PostForm("date"); v != "" {
		date, err := parseDate(v)
		if err != nil {
			return TransactionEditable{}, err
		}
		editable.Date = date
	}

	if v := c.PostForm("amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return TransactionEditable{}, err
		}
		editable.Amount = amount
	}

	editable.Currency = c.PostForm("currency")
	editable.Type = models.TransactionType(c.PostForm("type"))
	editable.CategoryID = c.PostForm("categoryId")
	editable.Account = c.PostForm("account")
	editable.Tags = parseTags(c.PostFormArray("tags"))
	editable.Vendor = c.PostForm("vendor")
	editable.Client = c.PostForm("client")
	editable.ProjectID = c.PostForm("projectId")
	editable.InvoiceID = c.PostForm("invoiceId")
	editable.Reconciled = c.PostForm("reconciled") == "true"
	editable.Notes = c.PostForm("notes")

	if v := c.PostForm("splits"); v != "" {
		if !json.Valid([]byte(v)) {
			return TransactionEditable{}, httputil.ErrInvalidBody
		}
		editable.Splits = json.RawMessage(v)
	}

	return editable, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return date, nil
	}

	return time.Parse("2006-01-02", value)
}

func parseTags(values []string) []string {
	if len(values) == 1 && strings.Contains(values[0], "|") {
		values = strings.Split(values[0], "|")
	}

	tags := make([]string, 0, len(values))
	for _, tag := range values {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// saveReceipt stores an uploaded receipt file under a random name and
// returns the path it is served from. No file is not an error.
func saveReceipt(c *gin.Context) (string, error) {
	file, err := c.FormFile("receipt")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(depsFrom(c).UploadDir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
