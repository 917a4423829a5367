// Code generated by ent, DO NOT EDIT.

package poheader

import (
	"po-tracker/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldID, id))
}

// PoNumber applies equality check predicate on the "po_number" field. It's identical to PoNumberEQ.
func PoNumber(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldPoNumber, v))
}

// PoDate applies equality check predicate on the "po_date" field. It's identical to PoDateEQ.
func PoDate(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldPoDate, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldDueDate, v))
}

// BuyerInfo applies equality check predicate on the "buyer_info" field. It's identical to BuyerInfoEQ.
func BuyerInfo(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldBuyerInfo, v))
}

// BillTo applies equality check predicate on the "bill_to" field. It's identical to BillToEQ.
func BillTo(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldBillTo, v))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldVendorID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldName, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldAddress, v))
}

// Contact applies equality check predicate on the "contact" field. It's identical to ContactEQ.
func Contact(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldContact, v))
}

// ShipTo applies equality check predicate on the "ship_to" field. It's identical to ShipToEQ.
func ShipTo(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShipTo, v))
}

// ShipFrom applies equality check predicate on the "ship_from" field. It's identical to ShipFromEQ.
func ShipFrom(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShipFrom, v))
}

// ShipDate applies equality check predicate on the "ship_date" field. It's identical to ShipDateEQ.
func ShipDate(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShipDate, v))
}

// ShipVia applies equality check predicate on the "ship_via" field. It's identical to ShipViaEQ.
func ShipVia(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShipVia, v))
}

// ShippingInstruction applies equality check predicate on the "shipping_instruction" field. It's identical to ShippingInstructionEQ.
func ShippingInstruction(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShippingInstruction, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldTotalAmount, v))
}

// PoDocName applies equality check predicate on the "po_doc_name" field. It's identical to PoDocNameEQ.
func PoDocName(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldPoDocName, v))
}

// ResponseMs applies equality check predicate on the "response_ms" field. It's identical to ResponseMsEQ.
func ResponseMs(v int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldResponseMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldCreatedAt, v))
}

// PoNumberEQ applies the EQ predicate on the "po_number" field.
func PoNumberEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldPoNumber, v))
}

// PoNumberNEQ applies the NEQ predicate on the "po_number" field.
func PoNumberNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldPoNumber, v))
}

// PoNumberIn applies the In predicate on the "po_number" field.
func PoNumberIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldPoNumber, vs...))
}

// PoNumberNotIn applies the NotIn predicate on the "po_number" field.
func PoNumberNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldPoNumber, vs...))
}

// PoNumberGT applies the GT predicate on the "po_number" field.
func PoNumberGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldPoNumber, v))
}

// PoNumberGTE applies the GTE predicate on the "po_number" field.
func PoNumberGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldPoNumber, v))
}

// PoNumberLT applies the LT predicate on the "po_number" field.
func PoNumberLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldPoNumber, v))
}

// PoNumberLTE applies the LTE predicate on the "po_number" field.
func PoNumberLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldPoNumber, v))
}

// PoNumberContains applies the Contains predicate on the "po_number" field.
func PoNumberContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldPoNumber, v))
}

// PoNumberHasPrefix applies the HasPrefix predicate on the "po_number" field.
func PoNumberHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldPoNumber, v))
}

// PoNumberHasSuffix applies the HasSuffix predicate on the "po_number" field.
func PoNumberHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldPoNumber, v))
}

// PoNumberEqualFold applies the EqualFold predicate on the "po_number" field.
func PoNumberEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldPoNumber, v))
}

// PoNumberContainsFold applies the ContainsFold predicate on the "po_number" field.
func PoNumberContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldPoNumber, v))
}

// PoDateEQ applies the EQ predicate on the "po_date" field.
func PoDateEQ(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldPoDate, v))
}

// PoDateNEQ applies the NEQ predicate on the "po_date" field.
func PoDateNEQ(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldPoDate, v))
}

// PoDateIn applies the In predicate on the "po_date" field.
func PoDateIn(vs ...time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldPoDate, vs...))
}

// PoDateNotIn applies the NotIn predicate on the "po_date" field.
func PoDateNotIn(vs ...time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldPoDate, vs...))
}

// PoDateGT applies the GT predicate on the "po_date" field.
func PoDateGT(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldPoDate, v))
}

// PoDateGTE applies the GTE predicate on the "po_date" field.
func PoDateGTE(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldPoDate, v))
}

// PoDateLT applies the LT predicate on the "po_date" field.
func PoDateLT(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldPoDate, v))
}

// PoDateLTE applies the LTE predicate on the "po_date" field.
func PoDateLTE(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldPoDate, v))
}

// PoDateIsNil applies the IsNil predicate on the "po_date" field.
func PoDateIsNil() predicate.POHeader {
	return predicate.POHeader(sql.FieldIsNull(FieldPoDate))
}

// PoDateNotNil applies the NotNil predicate on the "po_date" field.
func PoDateNotNil() predicate.POHeader {
	return predicate.POHeader(sql.FieldNotNull(FieldPoDate))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.POHeader {
	return predicate.POHeader(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.POHeader {
	return predicate.POHeader(sql.FieldNotNull(FieldDueDate))
}

// BuyerInfoEQ applies the EQ predicate on the "buyer_info" field.
func BuyerInfoEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldBuyerInfo, v))
}

// BuyerInfoNEQ applies the NEQ predicate on the "buyer_info" field.
func BuyerInfoNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldBuyerInfo, v))
}

// BuyerInfoIn applies the In predicate on the "buyer_info" field.
func BuyerInfoIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldBuyerInfo, vs...))
}

// BuyerInfoNotIn applies the NotIn predicate on the "buyer_info" field.
func BuyerInfoNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldBuyerInfo, vs...))
}

// BuyerInfoGT applies the GT predicate on the "buyer_info" field.
func BuyerInfoGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldBuyerInfo, v))
}

// BuyerInfoGTE applies the GTE predicate on the "buyer_info" field.
func BuyerInfoGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldBuyerInfo, v))
}

// BuyerInfoLT applies the LT predicate on the "buyer_info" field.
func BuyerInfoLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldBuyerInfo, v))
}

// BuyerInfoLTE applies the LTE predicate on the "buyer_info" field.
func BuyerInfoLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldBuyerInfo, v))
}

// BuyerInfoContains applies the Contains predicate on the "buyer_info" field.
func BuyerInfoContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldBuyerInfo, v))
}

// BuyerInfoHasPrefix applies the HasPrefix predicate on the "buyer_info" field.
func BuyerInfoHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldBuyerInfo, v))
}

// BuyerInfoHasSuffix applies the HasSuffix predicate on the "buyer_info" field.
func BuyerInfoHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldBuyerInfo, v))
}

// BuyerInfoEqualFold applies the EqualFold predicate on the "buyer_info" field.
func BuyerInfoEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldBuyerInfo, v))
}

// BuyerInfoContainsFold applies the ContainsFold predicate on the "buyer_info" field.
func BuyerInfoContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldBuyerInfo, v))
}

// BillToEQ applies the EQ predicate on the "bill_to" field.
func BillToEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldBillTo, v))
}

// BillToNEQ applies the NEQ predicate on the "bill_to" field.
func BillToNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldBillTo, v))
}

// BillToIn applies the In predicate on the "bill_to" field.
func BillToIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldBillTo, vs...))
}

// BillToNotIn applies the NotIn predicate on the "bill_to" field.
func BillToNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldBillTo, vs...))
}

// BillToGT applies the GT predicate on the "bill_to" field.
func BillToGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldBillTo, v))
}

// BillToGTE applies the GTE predicate on the "bill_to" field.
func BillToGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldBillTo, v))
}

// BillToLT applies the LT predicate on the "bill_to" field.
func BillToLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldBillTo, v))
}

// BillToLTE applies the LTE predicate on the "bill_to" field.
func BillToLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldBillTo, v))
}

// BillToContains applies the Contains predicate on the "bill_to" field.
func BillToContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldBillTo, v))
}

// BillToHasPrefix applies the HasPrefix predicate on the "bill_to" field.
func BillToHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldBillTo, v))
}

// BillToHasSuffix applies the HasSuffix predicate on the "bill_to" field.
func BillToHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldBillTo, v))
}

// BillToEqualFold applies the EqualFold predicate on the "bill_to" field.
func BillToEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldBillTo, v))
}

// BillToContainsFold applies the ContainsFold predicate on the "bill_to" field.
func BillToContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldBillTo, v))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldVendorID, vs...))
}

// VendorIDGT applies the GT predicate on the "vendor_id" field.
func VendorIDGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldVendorID, v))
}

// VendorIDGTE applies the GTE predicate on the "vendor_id" field.
func VendorIDGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldVendorID, v))
}

// VendorIDLT applies the LT predicate on the "vendor_id" field.
func VendorIDLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldVendorID, v))
}

// VendorIDLTE applies the LTE predicate on the "vendor_id" field.
func VendorIDLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldVendorID, v))
}

// VendorIDContains applies the Contains predicate on the "vendor_id" field.
func VendorIDContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldVendorID, v))
}

// VendorIDHasPrefix applies the HasPrefix predicate on the "vendor_id" field.
func VendorIDHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldVendorID, v))
}

// VendorIDHasSuffix applies the HasSuffix predicate on the "vendor_id" field.
func VendorIDHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldVendorID, v))
}

// VendorIDEqualFold applies the EqualFold predicate on the "vendor_id" field.
func VendorIDEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldVendorID, v))
}

// VendorIDContainsFold applies the ContainsFold predicate on the "vendor_id" field.
func VendorIDContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldVendorID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldName, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldAddress, v))
}

// ContactEQ applies the EQ predicate on the "contact" field.
func ContactEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldContact, v))
}

// ContactNEQ applies the NEQ predicate on the "contact" field.
func ContactNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldContact, v))
}

// ContactIn applies the In predicate on the "contact" field.
func ContactIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldContact, vs...))
}

// ContactNotIn applies the NotIn predicate on the "contact" field.
func ContactNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldContact, vs...))
}

// ContactGT applies the GT predicate on the "contact" field.
func ContactGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldContact, v))
}

// ContactGTE applies the GTE predicate on the "contact" field.
func ContactGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldContact, v))
}

// ContactLT applies the LT predicate on the "contact" field.
func ContactLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldContact, v))
}

// ContactLTE applies the LTE predicate on the "contact" field.
func ContactLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldContact, v))
}

// ContactContains applies the Contains predicate on the "contact" field.
func ContactContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldContact, v))
}

// ContactHasPrefix applies the HasPrefix predicate on the "contact" field.
func ContactHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldContact, v))
}

// ContactHasSuffix applies the HasSuffix predicate on the "contact" field.
func ContactHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldContact, v))
}

// ContactEqualFold applies the EqualFold predicate on the "contact" field.
func ContactEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldContact, v))
}

// ContactContainsFold applies the ContainsFold predicate on the "contact" field.
func ContactContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldContact, v))
}

// ShipToEQ applies the EQ predicate on the "ship_to" field.
func ShipToEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShipTo, v))
}

// ShipToNEQ applies the NEQ predicate on the "ship_to" field.
func ShipToNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldShipTo, v))
}

// ShipToIn applies the In predicate on the "ship_to" field.
func ShipToIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldShipTo, vs...))
}

// ShipToNotIn applies the NotIn predicate on the "ship_to" field.
func ShipToNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldShipTo, vs...))
}

// ShipToGT applies the GT predicate on the "ship_to" field.
func ShipToGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldShipTo, v))
}

// ShipToGTE applies the GTE predicate on the "ship_to" field.
func ShipToGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldShipTo, v))
}

// ShipToLT applies the LT predicate on the "ship_to" field.
func ShipToLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldShipTo, v))
}

// ShipToLTE applies the LTE predicate on the "ship_to" field.
func ShipToLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldShipTo, v))
}

// ShipToContains applies the Contains predicate on the "ship_to" field.
func ShipToContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldShipTo, v))
}

// ShipToHasPrefix applies the HasPrefix predicate on the "ship_to" field.
func ShipToHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldShipTo, v))
}

// ShipToHasSuffix applies the HasSuffix predicate on the "ship_to" field.
func ShipToHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldShipTo, v))
}

// ShipToEqualFold applies the EqualFold predicate on the "ship_to" field.
func ShipToEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldShipTo, v))
}

// ShipToContainsFold applies the ContainsFold predicate on the "ship_to" field.
func ShipToContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldShipTo, v))
}

// ShipFromEQ applies the EQ predicate on the "ship_from" field.
func ShipFromEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShipFrom, v))
}

// ShipFromNEQ applies the NEQ predicate on the "ship_from" field.
func ShipFromNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldShipFrom, v))
}

// ShipFromIn applies the In predicate on the "ship_from" field.
func ShipFromIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldShipFrom, vs...))
}

// ShipFromNotIn applies the NotIn predicate on the "ship_from" field.
func ShipFromNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldShipFrom, vs...))
}

// ShipFromGT applies the GT predicate on the "ship_from" field.
func ShipFromGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldShipFrom, v))
}

// ShipFromGTE applies the GTE predicate on the "ship_from" field.
func ShipFromGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldShipFrom, v))
}

// ShipFromLT applies the LT predicate on the "ship_from" field.
func ShipFromLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldShipFrom, v))
}

// ShipFromLTE applies the LTE predicate on the "ship_from" field.
func ShipFromLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldShipFrom, v))
}

// ShipFromContains applies the Contains predicate on the "ship_from" field.
func ShipFromContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldShipFrom, v))
}

// ShipFromHasPrefix applies the HasPrefix predicate on the "ship_from" field.
func ShipFromHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldShipFrom, v))
}

// ShipFromHasSuffix applies the HasSuffix predicate on the "ship_from" field.
func ShipFromHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldShipFrom, v))
}

// ShipFromEqualFold applies the EqualFold predicate on the "ship_from" field.
func ShipFromEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldShipFrom, v))
}

// ShipFromContainsFold applies the ContainsFold predicate on the "ship_from" field.
func ShipFromContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldShipFrom, v))
}

// ShipDateEQ applies the EQ predicate on the "ship_date" field.
func ShipDateEQ(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShipDate, v))
}

// ShipDateNEQ applies the NEQ predicate on the "ship_date" field.
func ShipDateNEQ(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldShipDate, v))
}

// ShipDateIn applies the In predicate on the "ship_date" field.
func ShipDateIn(vs ...time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldShipDate, vs...))
}

// ShipDateNotIn applies the NotIn predicate on the "ship_date" field.
func ShipDateNotIn(vs ...time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldShipDate, vs...))
}

// ShipDateGT applies the GT predicate on the "ship_date" field.
func ShipDateGT(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldShipDate, v))
}

// ShipDateGTE applies the GTE predicate on the "ship_date" field.
func ShipDateGTE(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldShipDate, v))
}

// ShipDateLT applies the LT predicate on the "ship_date" field.
func ShipDateLT(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldShipDate, v))
}

// ShipDateLTE applies the LTE predicate on the "ship_date" field.
func ShipDateLTE(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldShipDate, v))
}

// ShipDateIsNil applies the IsNil predicate on the "ship_date" field.
func ShipDateIsNil() predicate.POHeader {
	return predicate.POHeader(sql.FieldIsNull(FieldShipDate))
}

// ShipDateNotNil applies the NotNil predicate on the "ship_date" field.
func ShipDateNotNil() predicate.POHeader {
	return predicate.POHeader(sql.FieldNotNull(FieldShipDate))
}

// ShipViaEQ applies the EQ predicate on the "ship_via" field.
func ShipViaEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShipVia, v))
}

// ShipViaNEQ applies the NEQ predicate on the "ship_via" field.
func ShipViaNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldShipVia, v))
}

// ShipViaIn applies the In predicate on the "ship_via" field.
func ShipViaIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldShipVia, vs...))
}

// ShipViaNotIn applies the NotIn predicate on the "ship_via" field.
func ShipViaNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldShipVia, vs...))
}

// ShipViaGT applies the GT predicate on the "ship_via" field.
func ShipViaGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldShipVia, v))
}

// ShipViaGTE applies the GTE predicate on the "ship_via" field.
func ShipViaGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldShipVia, v))
}

// ShipViaLT applies the LT predicate on the "ship_via" field.
func ShipViaLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldShipVia, v))
}

// ShipViaLTE applies the LTE predicate on the "ship_via" field.
func ShipViaLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldShipVia, v))
}

// ShipViaContains applies the Contains predicate on the "ship_via" field.
func ShipViaContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldShipVia, v))
}

// ShipViaHasPrefix applies the HasPrefix predicate on the "ship_via" field.
func ShipViaHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldShipVia, v))
}

// ShipViaHasSuffix applies the HasSuffix predicate on the "ship_via" field.
func ShipViaHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldShipVia, v))
}

// ShipViaEqualFold applies the EqualFold predicate on the "ship_via" field.
func ShipViaEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldShipVia, v))
}

// ShipViaContainsFold applies the ContainsFold predicate on the "ship_via" field.
func ShipViaContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldShipVia, v))
}

// ShippingInstructionEQ applies the EQ predicate on the "shipping_instruction" field.
func ShippingInstructionEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldShippingInstruction, v))
}

// ShippingInstructionNEQ applies the NEQ predicate on the "shipping_instruction" field.
func ShippingInstructionNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldShippingInstruction, v))
}

// ShippingInstructionIn applies the In predicate on the "shipping_instruction" field.
func ShippingInstructionIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldShippingInstruction, vs...))
}

// ShippingInstructionNotIn applies the NotIn predicate on the "shipping_instruction" field.
func ShippingInstructionNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldShippingInstruction, vs...))
}

// ShippingInstructionGT applies the GT predicate on the "shipping_instruction" field.
func ShippingInstructionGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldShippingInstruction, v))
}

// ShippingInstructionGTE applies the GTE predicate on the "shipping_instruction" field.
func ShippingInstructionGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldShippingInstruction, v))
}

// ShippingInstructionLT applies the LT predicate on the "shipping_instruction" field.
func ShippingInstructionLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldShippingInstruction, v))
}

// ShippingInstructionLTE applies the LTE predicate on the "shipping_instruction" field.
func ShippingInstructionLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldShippingInstruction, v))
}

// ShippingInstructionContains applies the Contains predicate on the "shipping_instruction" field.
func ShippingInstructionContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldShippingInstruction, v))
}

// ShippingInstructionHasPrefix applies the HasPrefix predicate on the "shipping_instruction" field.
func ShippingInstructionHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldShippingInstruction, v))
}

// ShippingInstructionHasSuffix applies the HasSuffix predicate on the "shipping_instruction" field.
func ShippingInstructionHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldShippingInstruction, v))
}

// ShippingInstructionEqualFold applies the EqualFold predicate on the "shipping_instruction" field.
func ShippingInstructionEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldShippingInstruction, v))
}

// ShippingInstructionContainsFold applies the ContainsFold predicate on the "shipping_instruction" field.
func ShippingInstructionContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldShippingInstruction, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.POHeader {
	return predicate.POHeader(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.POHeader {
	return predicate.POHeader(sql.FieldNotNull(FieldTotalAmount))
}

// PoDocNameEQ applies the EQ predicate on the "po_doc_name" field.
func PoDocNameEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldPoDocName, v))
}

// PoDocNameNEQ applies the NEQ predicate on the "po_doc_name" field.
func PoDocNameNEQ(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldPoDocName, v))
}

// PoDocNameIn applies the In predicate on the "po_doc_name" field.
func PoDocNameIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldPoDocName, vs...))
}

// PoDocNameNotIn applies the NotIn predicate on the "po_doc_name" field.
func PoDocNameNotIn(vs ...string) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldPoDocName, vs...))
}

// PoDocNameGT applies the GT predicate on the "po_doc_name" field.
func PoDocNameGT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldPoDocName, v))
}

// PoDocNameGTE applies the GTE predicate on the "po_doc_name" field.
func PoDocNameGTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldPoDocName, v))
}

// PoDocNameLT applies the LT predicate on the "po_doc_name" field.
func PoDocNameLT(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldPoDocName, v))
}

// PoDocNameLTE applies the LTE predicate on the "po_doc_name" field.
func PoDocNameLTE(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldPoDocName, v))
}

// PoDocNameContains applies the Contains predicate on the "po_doc_name" field.
func PoDocNameContains(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContains(FieldPoDocName, v))
}

// PoDocNameHasPrefix applies the HasPrefix predicate on the "po_doc_name" field.
func PoDocNameHasPrefix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasPrefix(FieldPoDocName, v))
}

// PoDocNameHasSuffix applies the HasSuffix predicate on the "po_doc_name" field.
func PoDocNameHasSuffix(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldHasSuffix(FieldPoDocName, v))
}

// PoDocNameEqualFold applies the EqualFold predicate on the "po_doc_name" field.
func PoDocNameEqualFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldEqualFold(FieldPoDocName, v))
}

// PoDocNameContainsFold applies the ContainsFold predicate on the "po_doc_name" field.
func PoDocNameContainsFold(v string) predicate.POHeader {
	return predicate.POHeader(sql.FieldContainsFold(FieldPoDocName, v))
}

// ResponseMsEQ applies the EQ predicate on the "response_ms" field.
func ResponseMsEQ(v int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldResponseMs, v))
}

// ResponseMsNEQ applies the NEQ predicate on the "response_ms" field.
func ResponseMsNEQ(v int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldResponseMs, v))
}

// ResponseMsIn applies the In predicate on the "response_ms" field.
func ResponseMsIn(vs ...int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldResponseMs, vs...))
}

// ResponseMsNotIn applies the NotIn predicate on the "response_ms" field.
func ResponseMsNotIn(vs ...int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldResponseMs, vs...))
}

// ResponseMsGT applies the GT predicate on the "response_ms" field.
func ResponseMsGT(v int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldResponseMs, v))
}

// ResponseMsGTE applies the GTE predicate on the "response_ms" field.
func ResponseMsGTE(v int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldResponseMs, v))
}

// ResponseMsLT applies the LT predicate on the "response_ms" field.
func ResponseMsLT(v int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldResponseMs, v))
}

// ResponseMsLTE applies the LTE predicate on the "response_ms" field.
func ResponseMsLTE(v int64) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldResponseMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.POHeader {
	return predicate.POHeader(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLineItems applies the HasEdge predicate on the "line_items" edge.
func HasLineItems() predicate.POHeader {
	return predicate.POHeader(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LineItemsTable, LineItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLineItemsWith applies the HasEdge predicate on the "line_items" edge with a given conditions (other predicates).
func HasLineItemsWith(preds ...predicate.POLineItem) predicate.POHeader {
	return predicate.POHeader(func(s *sql.Selector) {
		step := newLineItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.POHeader {
	return predicate.POHeader(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.POHeader {
	return predicate.POHeader(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.POHeader) predicate.POHeader {
	return predicate.POHeader(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.POHeader) predicate.POHeader {
	return predicate.POHeader(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.POHeader) predicate.POHeader {
	return predicate.POHeader(sql.NotPredicates(p))
}
