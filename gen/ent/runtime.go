// Code generated by ent, DO NOT EDIT.

package ent

import (
	"po-tracker/db/ent/schema"
	"po-tracker/gen/ent/extractjob"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/polineitem"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescPoDocName is the schema descriptor for po_doc_name field.
	extractjobDescPoDocName := extractjobFields[2].Descriptor()
	// extractjob.PoDocNameValidator is a validator for the "po_doc_name" field. It is called by the builders before save.
	extractjob.PoDocNameValidator = extractjobDescPoDocName.Validators[0].(func(string) error)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[3].Descriptor()
	// extractjob.DefaultStatus holds the default value on creation for the status field.
	extractjob.DefaultStatus = extractjobDescStatus.Default.(string)
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = func() func(string) error {
		validators := extractjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[7].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	poheaderFields := schema.POHeader{}.Fields()
	_ = poheaderFields
	// poheaderDescPoNumber is the schema descriptor for po_number field.
	poheaderDescPoNumber := poheaderFields[1].Descriptor()
	// poheader.DefaultPoNumber holds the default value on creation for the po_number field.
	poheader.DefaultPoNumber = poheaderDescPoNumber.Default.(string)
	// poheaderDescBuyerInfo is the schema descriptor for buyer_info field.
	poheaderDescBuyerInfo := poheaderFields[4].Descriptor()
	// poheader.DefaultBuyerInfo holds the default value on creation for the buyer_info field.
	poheader.DefaultBuyerInfo = poheaderDescBuyerInfo.Default.(string)
	// poheaderDescBillTo is the schema descriptor for bill_to field.
	poheaderDescBillTo := poheaderFields[5].Descriptor()
	// poheader.DefaultBillTo holds the default value on creation for the bill_to field.
	poheader.DefaultBillTo = poheaderDescBillTo.Default.(string)
	// poheaderDescVendorID is the schema descriptor for vendor_id field.
	poheaderDescVendorID := poheaderFields[6].Descriptor()
	// poheader.DefaultVendorID holds the default value on creation for the vendor_id field.
	poheader.DefaultVendorID = poheaderDescVendorID.Default.(string)
	// poheaderDescName is the schema descriptor for name field.
	poheaderDescName := poheaderFields[7].Descriptor()
	// poheader.DefaultName holds the default value on creation for the name field.
	poheader.DefaultName = poheaderDescName.Default.(string)
	// poheaderDescAddress is the schema descriptor for address field.
	poheaderDescAddress := poheaderFields[8].Descriptor()
	// poheader.DefaultAddress holds the default value on creation for the address field.
	poheader.DefaultAddress = poheaderDescAddress.Default.(string)
	// poheaderDescContact is the schema descriptor for contact field.
	poheaderDescContact := poheaderFields[9].Descriptor()
	// poheader.DefaultContact holds the default value on creation for the contact field.
	poheader.DefaultContact = poheaderDescContact.Default.(string)
	// poheaderDescShipTo is the schema descriptor for ship_to field.
	poheaderDescShipTo := poheaderFields[10].Descriptor()
	// poheader.DefaultShipTo holds the default value on creation for the ship_to field.
	poheader.DefaultShipTo = poheaderDescShipTo.Default.(string)
	// poheaderDescShipFrom is the schema descriptor for ship_from field.
	poheaderDescShipFrom := poheaderFields[11].Descriptor()
	// poheader.DefaultShipFrom holds the default value on creation for the ship_from field.
	poheader.DefaultShipFrom = poheaderDescShipFrom.Default.(string)
	// poheaderDescShipVia is the schema descriptor for ship_via field.
	poheaderDescShipVia := poheaderFields[13].Descriptor()
	// poheader.DefaultShipVia holds the default value on creation for the ship_via field.
	poheader.DefaultShipVia = poheaderDescShipVia.Default.(string)
	// poheaderDescShippingInstruction is the schema descriptor for shipping_instruction field.
	poheaderDescShippingInstruction := poheaderFields[14].Descriptor()
	// poheader.DefaultShippingInstruction holds the default value on creation for the shipping_instruction field.
	poheader.DefaultShippingInstruction = poheaderDescShippingInstruction.Default.(string)
	// poheaderDescPoDocName is the schema descriptor for po_doc_name field.
	poheaderDescPoDocName := poheaderFields[16].Descriptor()
	// poheader.PoDocNameValidator is a validator for the "po_doc_name" field. It is called by the builders before save.
	poheader.PoDocNameValidator = poheaderDescPoDocName.Validators[0].(func(string) error)
	// poheaderDescResponseMs is the schema descriptor for response_ms field.
	poheaderDescResponseMs := poheaderFields[17].Descriptor()
	// poheader.DefaultResponseMs holds the default value on creation for the response_ms field.
	poheader.DefaultResponseMs = poheaderDescResponseMs.Default.(int64)
	// poheaderDescCreatedAt is the schema descriptor for created_at field.
	poheaderDescCreatedAt := poheaderFields[18].Descriptor()
	// poheader.DefaultCreatedAt holds the default value on creation for the created_at field.
	poheader.DefaultCreatedAt = poheaderDescCreatedAt.Default.(func() time.Time)
	// poheaderDescID is the schema descriptor for id field.
	poheaderDescID := poheaderFields[0].Descriptor()
	// poheader.DefaultID holds the default value on creation for the id field.
	poheader.DefaultID = poheaderDescID.Default.(func() uuid.UUID)
	polineitemFields := schema.POLineItem{}.Fields()
	_ = polineitemFields
	// polineitemDescPoNumber is the schema descriptor for po_number field.
	polineitemDescPoNumber := polineitemFields[1].Descriptor()
	// polineitem.DefaultPoNumber holds the default value on creation for the po_number field.
	polineitem.DefaultPoNumber = polineitemDescPoNumber.Default.(string)
	// polineitemDescPoDocName is the schema descriptor for po_doc_name field.
	polineitemDescPoDocName := polineitemFields[2].Descriptor()
	// polineitem.PoDocNameValidator is a validator for the "po_doc_name" field. It is called by the builders before save.
	polineitem.PoDocNameValidator = polineitemDescPoDocName.Validators[0].(func(string) error)
	// polineitemDescResponseMs is the schema descriptor for response_ms field.
	polineitemDescResponseMs := polineitemFields[3].Descriptor()
	// polineitem.DefaultResponseMs holds the default value on creation for the response_ms field.
	polineitem.DefaultResponseMs = polineitemDescResponseMs.Default.(int64)
	// polineitemDescItemDescription is the schema descriptor for item_description field.
	polineitemDescItemDescription := polineitemFields[4].Descriptor()
	// polineitem.DefaultItemDescription holds the default value on creation for the item_description field.
	polineitem.DefaultItemDescription = polineitemDescItemDescription.Default.(string)
	// polineitemDescTimeline is the schema descriptor for timeline field.
	polineitemDescTimeline := polineitemFields[5].Descriptor()
	// polineitem.DefaultTimeline holds the default value on creation for the timeline field.
	polineitem.DefaultTimeline = polineitemDescTimeline.Default.(string)
	// polineitemDescRateType is the schema descriptor for rate_type field.
	polineitemDescRateType := polineitemFields[6].Descriptor()
	// polineitem.DefaultRateType holds the default value on creation for the rate_type field.
	polineitem.DefaultRateType = polineitemDescRateType.Default.(string)
	// polineitemDescTotalPrice is the schema descriptor for total_price field.
	polineitemDescTotalPrice := polineitemFields[7].Descriptor()
	// polineitem.DefaultTotalPrice holds the default value on creation for the total_price field.
	polineitem.DefaultTotalPrice = polineitemDescTotalPrice.Default.(string)
	// polineitemDescItemSerialNo is the schema descriptor for item_serial_no field.
	polineitemDescItemSerialNo := polineitemFields[8].Descriptor()
	// polineitem.DefaultItemSerialNo holds the default value on creation for the item_serial_no field.
	polineitem.DefaultItemSerialNo = polineitemDescItemSerialNo.Default.(string)
	// polineitemDescItemCode is the schema descriptor for item_code field.
	polineitemDescItemCode := polineitemFields[9].Descriptor()
	// polineitem.DefaultItemCode holds the default value on creation for the item_code field.
	polineitem.DefaultItemCode = polineitemDescItemCode.Default.(string)
	// polineitemDescQuantity is the schema descriptor for quantity field.
	polineitemDescQuantity := polineitemFields[10].Descriptor()
	// polineitem.DefaultQuantity holds the default value on creation for the quantity field.
	polineitem.DefaultQuantity = polineitemDescQuantity.Default.(string)
	// polineitemDescUom is the schema descriptor for uom field.
	polineitemDescUom := polineitemFields[11].Descriptor()
	// polineitem.DefaultUom holds the default value on creation for the uom field.
	polineitem.DefaultUom = polineitemDescUom.Default.(string)
	// polineitemDescUnitPrice is the schema descriptor for unit_price field.
	polineitemDescUnitPrice := polineitemFields[12].Descriptor()
	// polineitem.DefaultUnitPrice holds the default value on creation for the unit_price field.
	polineitem.DefaultUnitPrice = polineitemDescUnitPrice.Default.(string)
	// polineitemDescPageNo is the schema descriptor for page_no field.
	polineitemDescPageNo := polineitemFields[13].Descriptor()
	// polineitem.DefaultPageNo holds the default value on creation for the page_no field.
	polineitem.DefaultPageNo = polineitemDescPageNo.Default.(string)
	// polineitemDescCreatedAt is the schema descriptor for created_at field.
	polineitemDescCreatedAt := polineitemFields[14].Descriptor()
	// polineitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	polineitem.DefaultCreatedAt = polineitemDescCreatedAt.Default.(func() time.Time)
	// polineitemDescID is the schema descriptor for id field.
	polineitemDescID := polineitemFields[0].Descriptor()
	// polineitem.DefaultID holds the default value on creation for the id field.
	polineitem.DefaultID = polineitemDescID.Default.(func() uuid.UUID)
}
