package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/walletapp/backend/models"
	"github.com/walletapp/backend/utils/logger"
)

// Store is the storage capability the handlers need. *db.Storage implements
// it; tests plug in an in-memory double.
type Store interface {
	CreateTransaction(t *models.Transaction) error
	GetTransactionsByUser(userID string) ([]models.Transaction, error)
	DeleteTransaction(id int) (bool, error)
	GetSummary(userID string) (*models.Summary, error)
}

type Handler struct {
	storage Store
}

func NewHandler(s Store) *Handler {
	return &Handler{storage: s}
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Creates a ledger entry for a user. Positive amounts are income, negative are expenses.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.CreateTransactionRequest true "Transaction to create"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/create [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required!"})
		return
	}

	// Amount may legitimately be zero; only an absent field is rejected.
	if req.UserID == "" || req.Title == "" || req.Amount == nil || req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required!"})
		return
	}

	transaction := models.Transaction{
		UserID:   req.UserID,
		Title:    req.Title,
		Amount:   *req.Amount,
		Category: req.Category,
	}
	if err := h.storage.CreateTransaction(&transaction); err != nil {
		logger.Errorf("Error creating the transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// GetTransactionsByUser godoc
// @Summary List a user's transactions
// @Description Returns all transactions for the user, newest first.
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.Transaction
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{userId} [get]
func (h *Handler) GetTransactionsByUser(c *gin.Context) {
	userID := c.Param("userId")

	transactions, err := h.storage.GetTransactionsByUser(userID)
	if err != nil {
		logger.Errorf("Error getting the transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/delete/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transaction ID!"})
		return
	}

	deleted, err := h.storage.DeleteTransaction(id)
	if err != nil {
		logger.Errorf("Error deleting the transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully!"})
}

// GetSummary godoc
// @Summary Summarize a user's transactions
// @Description Balance is the sum of all amounts, income the sum of positive amounts, expense the sum of negative amounts (signed).
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.Summary
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/summary/{userId} [get]
func (h *Handler) GetSummary(c *gin.Context) {
	userID := c.Param("userId")

	summary, err := h.storage.GetSummary(userID)
	if err != nil {
		logger.Errorf("Error getting the transaction summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error!"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
