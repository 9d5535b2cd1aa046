package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sale representa uma venda registrada por um terminal NeoPDV
type Sale struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"user_id"`
	Total         float64    `json:"total"`
	Discount      float64    `json:"discount"`
	PaymentMethod string     `json:"payment_method"`
	Cancelled     bool       `json:"cancelled"`
	Items         []SaleItem `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SaleItem é um item de venda vinculado a um produto
type SaleItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	WeightKg  float64 `json:"weight_kg"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// NetAmount retorna o valor líquido da venda (total - desconto)
func (s *Sale) NetAmount() float64 {
	return s.Total - s.Discount
}

// SaleOperatorRow é uma linha do relatório de vendas por vendedor
type SaleOperatorRow struct {
	SaleID        string     `json:"venda_id"`
	Total         float64    `json:"total"`
	Discount      float64    `json:"desconto"`
	PaymentMethod string     `json:"forma_pagamento"`
	Cancelled     bool       `json:"cancelada"`
	CreatedAt     time.Time  `json:"created_at"`
	OperatorID    *string    `json:"usuario_id"`
	OperatorName  *string    `json:"vendedor"`
	ItemCount     int        `json:"qtd_itens"`
}
