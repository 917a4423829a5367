package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"po-tracker/gen/ent"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/polineitem"
	"po-tracker/internal/entity"
	"po-tracker/internal/extract"
	"po-tracker/internal/utils"
)

// SaveExtractionRequest wraps one document's extraction output for persistence.
type SaveExtractionRequest struct {
	PODocName  string
	ResponseMs int64
	Header     extract.HeaderRecord
	Lines      []extract.LineItemRecord
}

type PORepository interface {
	// SaveExtraction writes the header and all line items in one transaction.
	SaveExtraction(ctx context.Context, req *SaveExtractionRequest) (*entity.POHeader, error)
	ListHeaders(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.POHeader, error)
	// ListLineItems returns the items for one document, or every item when
	// poDocName is empty.
	ListLineItems(ctx context.Context, poDocName string) ([]*entity.POLineItem, error)
}

type poRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPORepository(client *ent.Client, logger *slog.Logger) PORepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &poRepository{client: client, logger: logger}
}

func (r *poRepository) SaveExtraction(ctx context.Context, req *SaveExtractionRequest) (*entity.POHeader, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	h := req.Header
	header, err := tx.POHeader.Create().
		SetPoNumber(h.PONumber).
		SetNillablePoDate(utils.ParseDate(h.PODate)).
		SetNillableDueDate(utils.ParseDate(h.DueDate)).
		SetBuyerInfo(h.BuyerInfo).
		SetBillTo(h.BillTo).
		SetVendorID(h.VendorID).
		SetName(h.Name).
		SetAddress(h.Address).
		SetContact(h.Contact).
		SetShipTo(h.ShipTo).
		SetShipFrom(h.ShipFrom).
		SetNillableShipDate(utils.ParseDate(h.ShipDate)).
		SetShipVia(h.ShipVia).
		SetShippingInstruction(h.ShippingInstruction).
		SetNillableTotalAmount(utils.ParseAmount(h.TotalAmount)).
		SetPoDocName(req.PODocName).
		SetResponseMs(req.ResponseMs).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create header: %w", err))
	}

	if len(req.Lines) > 0 {
		builders := make([]*ent.POLineItemCreate, len(req.Lines))
		for i, li := range req.Lines {
			builders[i] = tx.POLineItem.Create().
				SetPoNumber(h.PONumber).
				SetPoDocName(req.PODocName).
				SetResponseMs(req.ResponseMs).
				SetItemDescription(li.ItemDescription).
				SetTimeline(li.Timeline).
				SetRateType(li.RateType).
				SetTotalPrice(li.TotalPrice).
				SetItemSerialNo(li.SerialNo).
				SetItemCode(li.ItemCode).
				SetQuantity(li.Quantity).
				SetUom(li.UOM).
				SetUnitPrice(li.UnitPrice).
				SetPageNo(li.PageNo).
				SetHeader(header)
		}
		if _, err := tx.POLineItem.CreateBulk(builders...).Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("create line items: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("extraction saved",
		"po_doc_name", req.PODocName,
		"po_number", h.PONumber,
		"line_items", len(req.Lines),
	)
	return utils.ToPOHeader(header), nil
}

func (r *poRepository) ListHeaders(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.POHeader, error) {
	q := r.client.POHeader.Query()
	if fromDate != nil {
		q = q.Where(poheader.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(poheader.CreatedAtLTE(*toDate))
	}
	rows, err := q.Order(poheader.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list headers", "error", err)
		return nil, err
	}
	out := make([]*entity.POHeader, len(rows))
	for i, row := range rows {
		out[i] = utils.ToPOHeader(row)
	}
	return out, nil
}

func (r *poRepository) ListLineItems(ctx context.Context, poDocName string) ([]*entity.POLineItem, error) {
	q := r.client.POLineItem.Query()
	if poDocName != "" {
		q = q.Where(polineitem.PoDocName(poDocName))
	}
	rows, err := q.Order(polineitem.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list line items", "po_doc_name", poDocName, "error", err)
		return nil, err
	}
	out := make([]*entity.POLineItem, len(rows))
	for i, row := range rows {
		out[i] = utils.ToPOLineItem(row)
	}
	return out, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
