// Code generated by ent, DO NOT EDIT.

package polineitem

import (
	"po-tracker/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldID, id))
}

// PoNumber applies equality check predicate on the "po_number" field. It's identical to PoNumberEQ.
func PoNumber(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldPoNumber, v))
}

// PoDocName applies equality check predicate on the "po_doc_name" field. It's identical to PoDocNameEQ.
func PoDocName(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldPoDocName, v))
}

// ResponseMs applies equality check predicate on the "response_ms" field. It's identical to ResponseMsEQ.
func ResponseMs(v int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldResponseMs, v))
}

// ItemDescription applies equality check predicate on the "item_description" field. It's identical to ItemDescriptionEQ.
func ItemDescription(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldItemDescription, v))
}

// Timeline applies equality check predicate on the "timeline" field. It's identical to TimelineEQ.
func Timeline(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldTimeline, v))
}

// RateType applies equality check predicate on the "rate_type" field. It's identical to RateTypeEQ.
func RateType(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldRateType, v))
}

// TotalPrice applies equality check predicate on the "total_price" field. It's identical to TotalPriceEQ.
func TotalPrice(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldTotalPrice, v))
}

// ItemSerialNo applies equality check predicate on the "item_serial_no" field. It's identical to ItemSerialNoEQ.
func ItemSerialNo(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldItemSerialNo, v))
}

// ItemCode applies equality check predicate on the "item_code" field. It's identical to ItemCodeEQ.
func ItemCode(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldItemCode, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldQuantity, v))
}

// Uom applies equality check predicate on the "uom" field. It's identical to UomEQ.
func Uom(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldUom, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// PageNo applies equality check predicate on the "page_no" field. It's identical to PageNoEQ.
func PageNo(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldPageNo, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldCreatedAt, v))
}

// PoNumberEQ applies the EQ predicate on the "po_number" field.
func PoNumberEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldPoNumber, v))
}

// PoNumberNEQ applies the NEQ predicate on the "po_number" field.
func PoNumberNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldPoNumber, v))
}

// PoNumberIn applies the In predicate on the "po_number" field.
func PoNumberIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldPoNumber, vs...))
}

// PoNumberNotIn applies the NotIn predicate on the "po_number" field.
func PoNumberNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldPoNumber, vs...))
}

// PoNumberGT applies the GT predicate on the "po_number" field.
func PoNumberGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldPoNumber, v))
}

// PoNumberGTE applies the GTE predicate on the "po_number" field.
func PoNumberGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldPoNumber, v))
}

// PoNumberLT applies the LT predicate on the "po_number" field.
func PoNumberLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldPoNumber, v))
}

// PoNumberLTE applies the LTE predicate on the "po_number" field.
func PoNumberLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldPoNumber, v))
}

// PoNumberContains applies the Contains predicate on the "po_number" field.
func PoNumberContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldPoNumber, v))
}

// PoNumberHasPrefix applies the HasPrefix predicate on the "po_number" field.
func PoNumberHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldPoNumber, v))
}

// PoNumberHasSuffix applies the HasSuffix predicate on the "po_number" field.
func PoNumberHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldPoNumber, v))
}

// PoNumberEqualFold applies the EqualFold predicate on the "po_number" field.
func PoNumberEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldPoNumber, v))
}

// PoNumberContainsFold applies the ContainsFold predicate on the "po_number" field.
func PoNumberContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldPoNumber, v))
}

// PoDocNameEQ applies the EQ predicate on the "po_doc_name" field.
func PoDocNameEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldPoDocName, v))
}

// PoDocNameNEQ applies the NEQ predicate on the "po_doc_name" field.
func PoDocNameNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldPoDocName, v))
}

// PoDocNameIn applies the In predicate on the "po_doc_name" field.
func PoDocNameIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldPoDocName, vs...))
}

// PoDocNameNotIn applies the NotIn predicate on the "po_doc_name" field.
func PoDocNameNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldPoDocName, vs...))
}

// PoDocNameGT applies the GT predicate on the "po_doc_name" field.
func PoDocNameGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldPoDocName, v))
}

// PoDocNameGTE applies the GTE predicate on the "po_doc_name" field.
func PoDocNameGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldPoDocName, v))
}

// PoDocNameLT applies the LT predicate on the "po_doc_name" field.
func PoDocNameLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldPoDocName, v))
}

// PoDocNameLTE applies the LTE predicate on the "po_doc_name" field.
func PoDocNameLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldPoDocName, v))
}

// PoDocNameContains applies the Contains predicate on the "po_doc_name" field.
func PoDocNameContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldPoDocName, v))
}

// PoDocNameHasPrefix applies the HasPrefix predicate on the "po_doc_name" field.
func PoDocNameHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldPoDocName, v))
}

// PoDocNameHasSuffix applies the HasSuffix predicate on the "po_doc_name" field.
func PoDocNameHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldPoDocName, v))
}

// PoDocNameEqualFold applies the EqualFold predicate on the "po_doc_name" field.
func PoDocNameEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldPoDocName, v))
}

// PoDocNameContainsFold applies the ContainsFold predicate on the "po_doc_name" field.
func PoDocNameContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldPoDocName, v))
}

// ResponseMsEQ applies the EQ predicate on the "response_ms" field.
func ResponseMsEQ(v int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldResponseMs, v))
}

// ResponseMsNEQ applies the NEQ predicate on the "response_ms" field.
func ResponseMsNEQ(v int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldResponseMs, v))
}

// ResponseMsIn applies the In predicate on the "response_ms" field.
func ResponseMsIn(vs ...int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldResponseMs, vs...))
}

// ResponseMsNotIn applies the NotIn predicate on the "response_ms" field.
func ResponseMsNotIn(vs ...int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldResponseMs, vs...))
}

// ResponseMsGT applies the GT predicate on the "response_ms" field.
func ResponseMsGT(v int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldResponseMs, v))
}

// ResponseMsGTE applies the GTE predicate on the "response_ms" field.
func ResponseMsGTE(v int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldResponseMs, v))
}

// ResponseMsLT applies the LT predicate on the "response_ms" field.
func ResponseMsLT(v int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldResponseMs, v))
}

// ResponseMsLTE applies the LTE predicate on the "response_ms" field.
func ResponseMsLTE(v int64) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldResponseMs, v))
}

// ItemDescriptionEQ applies the EQ predicate on the "item_description" field.
func ItemDescriptionEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldItemDescription, v))
}

// ItemDescriptionNEQ applies the NEQ predicate on the "item_description" field.
func ItemDescriptionNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldItemDescription, v))
}

// ItemDescriptionIn applies the In predicate on the "item_description" field.
func ItemDescriptionIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldItemDescription, vs...))
}

// ItemDescriptionNotIn applies the NotIn predicate on the "item_description" field.
func ItemDescriptionNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldItemDescription, vs...))
}

// ItemDescriptionGT applies the GT predicate on the "item_description" field.
func ItemDescriptionGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldItemDescription, v))
}

// ItemDescriptionGTE applies the GTE predicate on the "item_description" field.
func ItemDescriptionGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldItemDescription, v))
}

// ItemDescriptionLT applies the LT predicate on the "item_description" field.
func ItemDescriptionLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldItemDescription, v))
}

// ItemDescriptionLTE applies the LTE predicate on the "item_description" field.
func ItemDescriptionLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldItemDescription, v))
}

// ItemDescriptionContains applies the Contains predicate on the "item_description" field.
func ItemDescriptionContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldItemDescription, v))
}

// ItemDescriptionHasPrefix applies the HasPrefix predicate on the "item_description" field.
func ItemDescriptionHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldItemDescription, v))
}

// ItemDescriptionHasSuffix applies the HasSuffix predicate on the "item_description" field.
func ItemDescriptionHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldItemDescription, v))
}

// ItemDescriptionEqualFold applies the EqualFold predicate on the "item_description" field.
func ItemDescriptionEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldItemDescription, v))
}

// ItemDescriptionContainsFold applies the ContainsFold predicate on the "item_description" field.
func ItemDescriptionContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldItemDescription, v))
}

// TimelineEQ applies the EQ predicate on the "timeline" field.
func TimelineEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldTimeline, v))
}

// TimelineNEQ applies the NEQ predicate on the "timeline" field.
func TimelineNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldTimeline, v))
}

// TimelineIn applies the In predicate on the "timeline" field.
func TimelineIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldTimeline, vs...))
}

// TimelineNotIn applies the NotIn predicate on the "timeline" field.
func TimelineNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldTimeline, vs...))
}

// TimelineGT applies the GT predicate on the "timeline" field.
func TimelineGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldTimeline, v))
}

// TimelineGTE applies the GTE predicate on the "timeline" field.
func TimelineGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldTimeline, v))
}

// TimelineLT applies the LT predicate on the "timeline" field.
func TimelineLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldTimeline, v))
}

// TimelineLTE applies the LTE predicate on the "timeline" field.
func TimelineLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldTimeline, v))
}

// TimelineContains applies the Contains predicate on the "timeline" field.
func TimelineContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldTimeline, v))
}

// TimelineHasPrefix applies the HasPrefix predicate on the "timeline" field.
func TimelineHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldTimeline, v))
}

// TimelineHasSuffix applies the HasSuffix predicate on the "timeline" field.
func TimelineHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldTimeline, v))
}

// TimelineEqualFold applies the EqualFold predicate on the "timeline" field.
func TimelineEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldTimeline, v))
}

// TimelineContainsFold applies the ContainsFold predicate on the "timeline" field.
func TimelineContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldTimeline, v))
}

// RateTypeEQ applies the EQ predicate on the "rate_type" field.
func RateTypeEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldRateType, v))
}

// RateTypeNEQ applies the NEQ predicate on the "rate_type" field.
func RateTypeNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldRateType, v))
}

// RateTypeIn applies the In predicate on the "rate_type" field.
func RateTypeIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldRateType, vs...))
}

// RateTypeNotIn applies the NotIn predicate on the "rate_type" field.
func RateTypeNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldRateType, vs...))
}

// RateTypeGT applies the GT predicate on the "rate_type" field.
func RateTypeGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldRateType, v))
}

// RateTypeGTE applies the GTE predicate on the "rate_type" field.
func RateTypeGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldRateType, v))
}

// RateTypeLT applies the LT predicate on the "rate_type" field.
func RateTypeLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldRateType, v))
}

// RateTypeLTE applies the LTE predicate on the "rate_type" field.
func RateTypeLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldRateType, v))
}

// RateTypeContains applies the Contains predicate on the "rate_type" field.
func RateTypeContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldRateType, v))
}

// RateTypeHasPrefix applies the HasPrefix predicate on the "rate_type" field.
func RateTypeHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldRateType, v))
}

// RateTypeHasSuffix applies the HasSuffix predicate on the "rate_type" field.
func RateTypeHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldRateType, v))
}

// RateTypeEqualFold applies the EqualFold predicate on the "rate_type" field.
func RateTypeEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldRateType, v))
}

// RateTypeContainsFold applies the ContainsFold predicate on the "rate_type" field.
func RateTypeContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldRateType, v))
}

// TotalPriceEQ applies the EQ predicate on the "total_price" field.
func TotalPriceEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalPriceNEQ applies the NEQ predicate on the "total_price" field.
func TotalPriceNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldTotalPrice, v))
}

// TotalPriceIn applies the In predicate on the "total_price" field.
func TotalPriceIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldTotalPrice, vs...))
}

// TotalPriceNotIn applies the NotIn predicate on the "total_price" field.
func TotalPriceNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldTotalPrice, vs...))
}

// TotalPriceGT applies the GT predicate on the "total_price" field.
func TotalPriceGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldTotalPrice, v))
}

// TotalPriceGTE applies the GTE predicate on the "total_price" field.
func TotalPriceGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldTotalPrice, v))
}

// TotalPriceLT applies the LT predicate on the "total_price" field.
func TotalPriceLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldTotalPrice, v))
}

// TotalPriceLTE applies the LTE predicate on the "total_price" field.
func TotalPriceLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldTotalPrice, v))
}

// TotalPriceContains applies the Contains predicate on the "total_price" field.
func TotalPriceContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldTotalPrice, v))
}

// TotalPriceHasPrefix applies the HasPrefix predicate on the "total_price" field.
func TotalPriceHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldTotalPrice, v))
}

// TotalPriceHasSuffix applies the HasSuffix predicate on the "total_price" field.
func TotalPriceHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldTotalPrice, v))
}

// TotalPriceEqualFold applies the EqualFold predicate on the "total_price" field.
func TotalPriceEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldTotalPrice, v))
}

// TotalPriceContainsFold applies the ContainsFold predicate on the "total_price" field.
func TotalPriceContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldTotalPrice, v))
}

// ItemSerialNoEQ applies the EQ predicate on the "item_serial_no" field.
func ItemSerialNoEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldItemSerialNo, v))
}

// ItemSerialNoNEQ applies the NEQ predicate on the "item_serial_no" field.
func ItemSerialNoNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldItemSerialNo, v))
}

// ItemSerialNoIn applies the In predicate on the "item_serial_no" field.
func ItemSerialNoIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldItemSerialNo, vs...))
}

// ItemSerialNoNotIn applies the NotIn predicate on the "item_serial_no" field.
func ItemSerialNoNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldItemSerialNo, vs...))
}

// ItemSerialNoGT applies the GT predicate on the "item_serial_no" field.
func ItemSerialNoGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldItemSerialNo, v))
}

// ItemSerialNoGTE applies the GTE predicate on the "item_serial_no" field.
func ItemSerialNoGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldItemSerialNo, v))
}

// ItemSerialNoLT applies the LT predicate on the "item_serial_no" field.
func ItemSerialNoLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldItemSerialNo, v))
}

// ItemSerialNoLTE applies the LTE predicate on the "item_serial_no" field.
func ItemSerialNoLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldItemSerialNo, v))
}

// ItemSerialNoContains applies the Contains predicate on the "item_serial_no" field.
func ItemSerialNoContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldItemSerialNo, v))
}

// ItemSerialNoHasPrefix applies the HasPrefix predicate on the "item_serial_no" field.
func ItemSerialNoHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldItemSerialNo, v))
}

// ItemSerialNoHasSuffix applies the HasSuffix predicate on the "item_serial_no" field.
func ItemSerialNoHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldItemSerialNo, v))
}

// ItemSerialNoEqualFold applies the EqualFold predicate on the "item_serial_no" field.
func ItemSerialNoEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldItemSerialNo, v))
}

// ItemSerialNoContainsFold applies the ContainsFold predicate on the "item_serial_no" field.
func ItemSerialNoContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldItemSerialNo, v))
}

// ItemCodeEQ applies the EQ predicate on the "item_code" field.
func ItemCodeEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldItemCode, v))
}

// ItemCodeNEQ applies the NEQ predicate on the "item_code" field.
func ItemCodeNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldItemCode, v))
}

// ItemCodeIn applies the In predicate on the "item_code" field.
func ItemCodeIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldItemCode, vs...))
}

// ItemCodeNotIn applies the NotIn predicate on the "item_code" field.
func ItemCodeNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldItemCode, vs...))
}

// ItemCodeGT applies the GT predicate on the "item_code" field.
func ItemCodeGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldItemCode, v))
}

// ItemCodeGTE applies the GTE predicate on the "item_code" field.
func ItemCodeGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldItemCode, v))
}

// ItemCodeLT applies the LT predicate on the "item_code" field.
func ItemCodeLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldItemCode, v))
}

// ItemCodeLTE applies the LTE predicate on the "item_code" field.
func ItemCodeLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldItemCode, v))
}

// ItemCodeContains applies the Contains predicate on the "item_code" field.
func ItemCodeContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldItemCode, v))
}

// ItemCodeHasPrefix applies the HasPrefix predicate on the "item_code" field.
func ItemCodeHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldItemCode, v))
}

// ItemCodeHasSuffix applies the HasSuffix predicate on the "item_code" field.
func ItemCodeHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldItemCode, v))
}

// ItemCodeEqualFold applies the EqualFold predicate on the "item_code" field.
func ItemCodeEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldItemCode, v))
}

// ItemCodeContainsFold applies the ContainsFold predicate on the "item_code" field.
func ItemCodeContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldItemCode, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldQuantity, v))
}

// QuantityContains applies the Contains predicate on the "quantity" field.
func QuantityContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldQuantity, v))
}

// QuantityHasPrefix applies the HasPrefix predicate on the "quantity" field.
func QuantityHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldQuantity, v))
}

// QuantityHasSuffix applies the HasSuffix predicate on the "quantity" field.
func QuantityHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldQuantity, v))
}

// QuantityEqualFold applies the EqualFold predicate on the "quantity" field.
func QuantityEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldQuantity, v))
}

// QuantityContainsFold applies the ContainsFold predicate on the "quantity" field.
func QuantityContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldQuantity, v))
}

// UomEQ applies the EQ predicate on the "uom" field.
func UomEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldUom, v))
}

// UomNEQ applies the NEQ predicate on the "uom" field.
func UomNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldUom, v))
}

// UomIn applies the In predicate on the "uom" field.
func UomIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldUom, vs...))
}

// UomNotIn applies the NotIn predicate on the "uom" field.
func UomNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldUom, vs...))
}

// UomGT applies the GT predicate on the "uom" field.
func UomGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldUom, v))
}

// UomGTE applies the GTE predicate on the "uom" field.
func UomGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldUom, v))
}

// UomLT applies the LT predicate on the "uom" field.
func UomLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldUom, v))
}

// UomLTE applies the LTE predicate on the "uom" field.
func UomLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldUom, v))
}

// UomContains applies the Contains predicate on the "uom" field.
func UomContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldUom, v))
}

// UomHasPrefix applies the HasPrefix predicate on the "uom" field.
func UomHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldUom, v))
}

// UomHasSuffix applies the HasSuffix predicate on the "uom" field.
func UomHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldUom, v))
}

// UomEqualFold applies the EqualFold predicate on the "uom" field.
func UomEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldUom, v))
}

// UomContainsFold applies the ContainsFold predicate on the "uom" field.
func UomContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldUom, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldUnitPrice, v))
}

// UnitPriceContains applies the Contains predicate on the "unit_price" field.
func UnitPriceContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldUnitPrice, v))
}

// UnitPriceHasPrefix applies the HasPrefix predicate on the "unit_price" field.
func UnitPriceHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldUnitPrice, v))
}

// UnitPriceHasSuffix applies the HasSuffix predicate on the "unit_price" field.
func UnitPriceHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldUnitPrice, v))
}

// UnitPriceEqualFold applies the EqualFold predicate on the "unit_price" field.
func UnitPriceEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldUnitPrice, v))
}

// UnitPriceContainsFold applies the ContainsFold predicate on the "unit_price" field.
func UnitPriceContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldUnitPrice, v))
}

// PageNoEQ applies the EQ predicate on the "page_no" field.
func PageNoEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldPageNo, v))
}

// PageNoNEQ applies the NEQ predicate on the "page_no" field.
func PageNoNEQ(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldPageNo, v))
}

// PageNoIn applies the In predicate on the "page_no" field.
func PageNoIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldPageNo, vs...))
}

// PageNoNotIn applies the NotIn predicate on the "page_no" field.
func PageNoNotIn(vs ...string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldPageNo, vs...))
}

// PageNoGT applies the GT predicate on the "page_no" field.
func PageNoGT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldPageNo, v))
}

// PageNoGTE applies the GTE predicate on the "page_no" field.
func PageNoGTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldPageNo, v))
}

// PageNoLT applies the LT predicate on the "page_no" field.
func PageNoLT(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldPageNo, v))
}

// PageNoLTE applies the LTE predicate on the "page_no" field.
func PageNoLTE(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldPageNo, v))
}

// PageNoContains applies the Contains predicate on the "page_no" field.
func PageNoContains(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContains(FieldPageNo, v))
}

// PageNoHasPrefix applies the HasPrefix predicate on the "page_no" field.
func PageNoHasPrefix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasPrefix(FieldPageNo, v))
}

// PageNoHasSuffix applies the HasSuffix predicate on the "page_no" field.
func PageNoHasSuffix(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldHasSuffix(FieldPageNo, v))
}

// PageNoEqualFold applies the EqualFold predicate on the "page_no" field.
func PageNoEqualFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEqualFold(FieldPageNo, v))
}

// PageNoContainsFold applies the ContainsFold predicate on the "page_no" field.
func PageNoContainsFold(v string) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldContainsFold(FieldPageNo, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.POLineItem {
	return predicate.POLineItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasHeader applies the HasEdge predicate on the "header" edge.
func HasHeader() predicate.POLineItem {
	return predicate.POLineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HeaderTable, HeaderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHeaderWith applies the HasEdge predicate on the "header" edge with a given conditions (other predicates).
func HasHeaderWith(preds ...predicate.POHeader) predicate.POLineItem {
	return predicate.POLineItem(func(s *sql.Selector) {
		step := newHeaderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.POLineItem) predicate.POLineItem {
	return predicate.POLineItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.POLineItem) predicate.POLineItem {
	return predicate.POLineItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.POLineItem) predicate.POLineItem {
	return predicate.POLineItem(sql.NotPredicates(p))
}
