package schema

// Column names referenced by other packages. Each one must also appear in
// Columns below.
const (
	ColFolder            = "Folder"
	ColSourceFile        = "Source_File"
	ColSheetName         = "Sheet_Name"
	ColOrderForm         = "Order Form"
	ColReferenceFormatNo = "Reference Format No"
	ColPOReference       = "PO Reference"
	ColOFDate            = "O.F. Date"
	ColPODate            = "PO Date"
	ColOrderType         = "Order Type"
	ColContactPerson     = "Contact Person"
	ColBrandName         = "Brand Name"
)

// Columns is the canonical column set: the exact names and order of every
// combined output table. Do not reorder.
var Columns = []string{
	ColFolder,
	"Product Type (NEW)",
	ColSourceFile,
	ColSheetName,
	"Production Order Form",
	ColReferenceFormatNo,
	ColPOReference,
	"Reference Order No",
	ColOrderForm,
	ColOrderType,
	"Order Date",
	ColOFDate,
	ColPODate,
	"Generic Name",
	ColBrandName,
	"Quantity",
	"Pack Size",
	"Product Rate (NEW)",
	"Packing Size",
	"Packing Type",
	"Strength",
	"Net Content",
	"M.R.P.",
	"M.R.P. (Per Strip)",
	"Exp. Date",
	"Shelf Life",
	"Flavour",
	"Colour",
	"Packaging",
	"Bottle Type",
	"Measuring Cap",
	"Spray Pump",
	"ROPP Cap",
	"Closure",
	"Cap Color",
	"Label Provided By",
	"Carton Provided By",
	"Dropper",
	"PVC Size",
	"PVC Colour",
	"PVC Color & Type",
	"Blister Type",
	"Capsules Size",
	"Capsules Color",
	"Capsule Type",
	"Punch Size",
	"Tablet Color",
	"Coating Type",
	"Jar",
	"Jar Type",
	"Jar Lid Color",
	"Tin Type",
	"Tin / Jar Type",
	"Tin / Jar Rim Type",
	"Corrugated Box",
	"Corrugated Box Pack Size",
	"Corrugated Tin",
	"Cap / Lid / Spoon",
	"Spoon",
	"Leaflet",
	"Dropper (if not counted earlier)",
	"Strapping",
	"Wrapping",
	"Shrinking",
	"Dispatched Detail",
	"Date Of Dispatch",
	"Company Name",
	"Name Of Client",
	"Name Of Marketed By",
	ColContactPerson,
	"Contact Number",
	"Contact Detail Of Dispatch",
	"Specific Requirement If Any",
	"Artwork Revision",
	"Artwork Revision No",
	"Prepared By",
	"Checked By",
	"Approved Date",
	"Issued By Sign & Date",
	"Checked & Authorised Sign & Date",
	"Authorised Sign",
	"Designation",
	"Rate",
	"Due Payment",
	"Remark",
	"Product Batch Number",
}

// aliasPairs maps known label variations to canonical columns. Keys are
// normalized at package init; variations whose target is not a canonical
// column are rejected there so the matcher can never fabricate a column.
var aliasPairs = [][2]string{
	{"reference format no", ColReferenceFormatNo},
	{"ref format no", ColReferenceFormatNo},
	{"reference format", ColReferenceFormatNo},
	{"po reference", ColPOReference},
	{"po ref", ColPOReference},
	{"reference order no", "Reference Order No"},
	{"order form number", ColOrderForm},
	{"order form no", ColOrderForm},
	{"order form", ColOrderForm},
	{"order type", ColOrderType},
	{"order date", "Order Date"},
	{"of date", ColOFDate},
	{"o.f. date", ColOFDate},
	{"po date", ColPODate},
	{"generic name", "Generic Name"},
	{"brand name", ColBrandName},
	{"quantity", "Quantity"},
	{"qty", "Quantity"},
	{"pack size", "Pack Size"},
	{"packing size", "Packing Size"},
	{"packing type", "Packing Type"},
	{"strength", "Strength"},
	{"net content", "Net Content"},
	{"m.r.p", "M.R.P."},
	{"mrp", "M.R.P."},
	{"m.r.p.", "M.R.P."},
	{"m.r.p. per strip", "M.R.P. (Per Strip)"},
	{"exp date", "Exp. Date"},
	{"expiry date", "Exp. Date"},
	{"shelf life", "Shelf Life"},
	{"flavour", "Flavour"},
	{"flavor", "Flavour"},
	{"colour", "Colour"},
	{"color", "Colour"},
	{"packaging", "Packaging"},
	{"bottle type", "Bottle Type"},
	{"measuring cap", "Measuring Cap"},
	{"spray pump", "Spray Pump"},
	{"ropp cap", "ROPP Cap"},
	{"closure", "Closure"},
	{"cap color", "Cap Color"},
	{"cap colour", "Cap Color"},
	{"label provided by", "Label Provided By"},
	{"carton provided by", "Carton Provided By"},
	{"dropper", "Dropper"},
	{"pvc size", "PVC Size"},
	{"pvc colour", "PVC Colour"},
	{"pvc color", "PVC Colour"},
	{"pvc color type", "PVC Color & Type"},
	{"pvc color & type", "PVC Color & Type"},
	{"blister type", "Blister Type"},
	{"capsules size", "Capsules Size"},
	{"capsule size", "Capsules Size"},
	{"capsules color", "Capsules Color"},
	{"capsule color", "Capsules Color"},
	{"capsules colour", "Capsules Color"},
	{"capsule type", "Capsule Type"},
	{"tablet color", "Tablet Color"},
	{"tablet colour", "Tablet Color"},
	{"coating type", "Coating Type"},
	{"punch size", "Punch Size"},
	{"jar", "Jar"},
	{"jar type", "Jar Type"},
	{"tin type", "Tin Type"},
	{"tin jar type", "Tin / Jar Type"},
	{"tin / jar type", "Tin / Jar Type"},
	{"tin jar rim type", "Tin / Jar Rim Type"},
	{"tin / jar rim type", "Tin / Jar Rim Type"},
	{"jar lid color", "Jar Lid Color"},
	{"corrugated box", "Corrugated Box"},
	{"corrugated box pack size", "Corrugated Box Pack Size"},
	{"corrugated tin", "Corrugated Tin"},
	{"cap lid spoon", "Cap / Lid / Spoon"},
	{"cap / lid / spoon", "Cap / Lid / Spoon"},
	{"spoon", "Spoon"},
	{"leaflet", "Leaflet"},
	{"strapping", "Strapping"},
	{"wrapping", "Wrapping"},
	{"shrinking", "Shrinking"},
	{"dispatched detail", "Dispatched Detail"},
	{"company name", "Company Name"},
	{"name of client", "Name Of Client"},
	{"name of marketed by", "Name Of Marketed By"},
	{"marketed by", "Name Of Marketed By"},
	{"contact person", ColContactPerson},
	{"contact number", "Contact Number"},
	{"contact detail of dispatch", "Contact Detail Of Dispatch"},
	{"date of dispatch", "Date Of Dispatch"},
	{"specific requirement if any", "Specific Requirement If Any"},
	{"artwork revision", "Artwork Revision"},
	{"artwork revision no", "Artwork Revision No"},
	{"prepared by", "Prepared By"},
	{"checked by", "Checked By"},
	{"approved date", "Approved Date"},
	{"issued by sign date", "Issued By Sign & Date"},
	{"checked authorised sign date", "Checked & Authorised Sign & Date"},
	{"authorised sign", "Authorised Sign"},
	{"designation", "Designation"},
	{"rate", "Rate"},
	{"due payment", "Due Payment"},
	{"remark", "Remark"},
	{"product batch number", "Product Batch Number"},
}
