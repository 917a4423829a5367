// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "po_doc_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "raw_response", Type: field.TypeBytes, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "header_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_po_header_details_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[8]},
				RefColumns: []*schema.Column{PoHeaderDetailsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_po_doc_name_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[1], ExtractJobsColumns[2], ExtractJobsColumns[6]},
			},
			{
				Name:    "extractjob_header_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[8]},
			},
		},
	}
	// PoHeaderDetailsColumns holds the columns for the "po_header_details" table.
	PoHeaderDetailsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "po_number", Type: field.TypeString, Default: ""},
		{Name: "po_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "buyer_info", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "bill_to", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "vendor_id", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "address", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "contact", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "ship_to", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "ship_from", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "ship_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "ship_via", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "shipping_instruction", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "po_doc_name", Type: field.TypeString},
		{Name: "response_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PoHeaderDetailsTable holds the schema information for the "po_header_details" table.
	PoHeaderDetailsTable = &schema.Table{
		Name:       "po_header_details",
		Columns:    PoHeaderDetailsColumns,
		PrimaryKey: []*schema.Column{PoHeaderDetailsColumns[0]},
	}
	// PoLineItemsColumns holds the columns for the "po_line_items" table.
	PoLineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "po_number", Type: field.TypeString, Default: ""},
		{Name: "po_doc_name", Type: field.TypeString},
		{Name: "response_ms", Type: field.TypeInt64, Default: 0},
		{Name: "item_description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "timeline", Type: field.TypeString, Default: ""},
		{Name: "rate_type", Type: field.TypeString, Default: ""},
		{Name: "total_price", Type: field.TypeString, Default: ""},
		{Name: "item_serial_no", Type: field.TypeString, Default: ""},
		{Name: "item_code", Type: field.TypeString, Default: ""},
		{Name: "quantity", Type: field.TypeString, Default: ""},
		{Name: "uom", Type: field.TypeString, Default: ""},
		{Name: "unit_price", Type: field.TypeString, Default: ""},
		{Name: "page_no", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "po_header_line_items", Type: field.TypeUUID, Nullable: true},
	}
	// PoLineItemsTable holds the schema information for the "po_line_items" table.
	PoLineItemsTable = &schema.Table{
		Name:       "po_line_items",
		Columns:    PoLineItemsColumns,
		PrimaryKey: []*schema.Column{PoLineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "po_line_items_po_header_details_line_items",
				Columns:    []*schema.Column{PoLineItemsColumns[15]},
				RefColumns: []*schema.Column{PoHeaderDetailsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobsTable,
		PoHeaderDetailsTable,
		PoLineItemsTable,
	}
)

func init() {
	ExtractJobsTable.ForeignKeys[0].RefTable = PoHeaderDetailsTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
	PoHeaderDetailsTable.Annotation = &entsql.Annotation{
		Table: "po_header_details",
	}
	PoLineItemsTable.ForeignKeys[0].RefTable = PoHeaderDetailsTable
	PoLineItemsTable.Annotation = &entsql.Annotation{
		Table: "po_line_items",
	}
}
