package controllers

import (
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	transactions *services.TransactionService
}

func NewTransactionController(transactions *services.TransactionService) *TransactionController {
	return &TransactionController{transactions: transactions}
}

func (ctrl *TransactionController) List(c *gin.Context) {
	list, err := ctrl.transactions.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

func (ctrl *TransactionController) Get(c *gin.Context) {
	tx, err := ctrl.transactions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tx)
}

func (ctrl *TransactionController) Delete(c *gin.Context) {
	if err := ctrl.transactions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "Transaction deleted")
}
