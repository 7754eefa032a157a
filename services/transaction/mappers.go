package transaction

import (
	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
)

func ToTransactionModel(t db.WalletTransaction) *TransactionModel {
	m := &TransactionModel{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Type:        t.Type,
		Amount:      t.Amount,
		Status:      t.Status,
		Reference:   t.Reference,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
	if t.ShipmentID.Valid {
		id := t.ShipmentID.UUID
		m.ShipmentID = &id
	}
	return m
}

func ToTransactionCollection(rows []db.WalletTransaction) []*TransactionModel {
	out := make([]*TransactionModel, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToTransactionModel(row))
	}
	return out
}
