package utils

import (
	"po-tracker/gen/ent"
	"po-tracker/internal/entity"
)

// ToPOHeader maps an ent row to the transport-neutral entity.
func ToPOHeader(h *ent.POHeader) *entity.POHeader {
	if h == nil {
		return nil
	}
	return &entity.POHeader{
		ID:                  h.ID,
		PONumber:            h.PoNumber,
		PODate:              h.PoDate,
		DueDate:             h.DueDate,
		BuyerInfo:           h.BuyerInfo,
		BillTo:              h.BillTo,
		VendorID:            h.VendorID,
		Name:                h.Name,
		Address:             h.Address,
		Contact:             h.Contact,
		ShipTo:              h.ShipTo,
		ShipFrom:            h.ShipFrom,
		ShipDate:            h.ShipDate,
		ShipVia:             h.ShipVia,
		ShippingInstruction: h.ShippingInstruction,
		TotalAmount:         h.TotalAmount,
		PODocName:           h.PoDocName,
		ResponseMs:          h.ResponseMs,
		CreatedAt:           h.CreatedAt,
	}
}

// ToPOLineItem maps an ent row to the transport-neutral entity.
func ToPOLineItem(li *ent.POLineItem) *entity.POLineItem {
	if li == nil {
		return nil
	}
	return &entity.POLineItem{
		ID:              li.ID,
		PONumber:        li.PoNumber,
		PODocName:       li.PoDocName,
		ResponseMs:      li.ResponseMs,
		ItemDescription: li.ItemDescription,
		Timeline:        li.Timeline,
		RateType:        li.RateType,
		TotalPrice:      li.TotalPrice,
		ItemSerialNo:    li.ItemSerialNo,
		ItemCode:        li.ItemCode,
		Quantity:        li.Quantity,
		UOM:             li.Uom,
		UnitPrice:       li.UnitPrice,
		PageNo:          li.PageNo,
		CreatedAt:       li.CreatedAt,
	}
}

// ToExtractJob maps an ent row to the transport-neutral entity.
func ToExtractJob(j *ent.ExtractJob) *entity.ExtractJob {
	if j == nil {
		return nil
	}
	return &entity.ExtractJob{
		ID:           j.ID,
		PODocName:    j.PoDocName,
		Status:       string(j.Status),
		ModelName:    j.ModelName,
		RawResponse:  j.RawResponse,
		ErrorMessage: j.ErrorMessage,
		StartedAt:    j.StartedAt,
		FinishedAt:   j.FinishedAt,
	}
}
