package schema

import "github.com/NikitaCOEUR/graphsh/internal/filter"

// TicketField enumerates the filterable ticket fields
type TicketField string

// Ticket fields
const (
	TicketID             TicketField = "Id"
	TicketSubject        TicketField = "Subject"
	TicketStatus         TicketField = "Status"
	TicketPriority       TicketField = "Priority"
	TicketCreatedAt      TicketField = "CreatedAt"
	TicketUpdatedAt      TicketField = "UpdatedAt"
	TicketDueAt          TicketField = "DueAt"
	TicketIsEscalated    TicketField = "IsEscalated"
	TicketAssigneeEmail  TicketField = "AssigneeEmail"
	TicketRequesterEmail TicketField = "RequesterEmail"
)

// ContactField enumerates the filterable contact fields
type ContactField string

// Contact fields
const (
	ContactID        ContactField = "Id"
	ContactFirstName ContactField = "FirstName"
	ContactLastName  ContactField = "LastName"
	ContactEmail     ContactField = "Email"
	ContactPhone     ContactField = "Phone"
	ContactCompanyID ContactField = "CompanyId"
	ContactIsVIP     ContactField = "IsVip"
	ContactCreatedAt ContactField = "CreatedAt"
)

// CompanyField enumerates the filterable company fields
type CompanyField string

// Company fields
const (
	CompanyID            CompanyField = "Id"
	CompanyName          CompanyField = "Name"
	CompanyDomain        CompanyField = "Domain"
	CompanyEmployeeCount CompanyField = "EmployeeCount"
	CompanyIsCustomer    CompanyField = "IsCustomer"
	CompanyCreatedAt     CompanyField = "CreatedAt"
)

// AssetField enumerates the filterable asset fields
type AssetField string

// Asset fields
const (
	AssetID                AssetField = "Id"
	AssetName              AssetField = "Name"
	AssetSerialNumber      AssetField = "SerialNumber"
	AssetTag               AssetField = "AssetTag"
	AssetCost              AssetField = "Cost"
	AssetIsRetired         AssetField = "IsRetired"
	AssetPurchasedAt       AssetField = "PurchasedAt"
	AssetWarrantyExpiresAt AssetField = "WarrantyExpiresAt"
)

// Tickets describes support tickets
var Tickets = NewEntity("ticket", "tickets", []string{"tickets", "t"},
	FieldInfo[TicketField]{Field: TicketID, Kind: filter.KindInteger, Description: "Ticket number"},
	FieldInfo[TicketField]{Field: TicketSubject, Kind: filter.KindText, Description: "Subject line"},
	FieldInfo[TicketField]{Field: TicketStatus, Kind: filter.KindText, Description: "Workflow status name"},
	FieldInfo[TicketField]{Field: TicketPriority, Kind: filter.KindInteger, Description: "Priority, 1 is most urgent"},
	FieldInfo[TicketField]{Field: TicketCreatedAt, Kind: filter.KindTemporal, Description: "Creation time"},
	FieldInfo[TicketField]{Field: TicketUpdatedAt, Kind: filter.KindTemporal, Description: "Last update time"},
	FieldInfo[TicketField]{Field: TicketDueAt, Kind: filter.KindTemporal, Description: "SLA due time"},
	FieldInfo[TicketField]{Field: TicketIsEscalated, Kind: filter.KindBoolean, Description: "Escalated to a second line team"},
	FieldInfo[TicketField]{Field: TicketAssigneeEmail, Kind: filter.KindText, Description: "Email of the assigned agent"},
	FieldInfo[TicketField]{Field: TicketRequesterEmail, Kind: filter.KindText, Description: "Email of the requester"},
)

// Contacts describes people known to the help desk
var Contacts = NewEntity("contact", "contacts", []string{"contacts", "person", "people"},
	FieldInfo[ContactField]{Field: ContactID, Kind: filter.KindInteger, Description: "Contact identifier"},
	FieldInfo[ContactField]{Field: ContactFirstName, Kind: filter.KindText},
	FieldInfo[ContactField]{Field: ContactLastName, Kind: filter.KindText},
	FieldInfo[ContactField]{Field: ContactEmail, Kind: filter.KindText, Description: "Primary email address"},
	FieldInfo[ContactField]{Field: ContactPhone, Kind: filter.KindText},
	FieldInfo[ContactField]{Field: ContactCompanyID, Kind: filter.KindInteger, Description: "Employer company identifier"},
	FieldInfo[ContactField]{Field: ContactIsVIP, Kind: filter.KindBoolean, Description: "Flagged as VIP"},
	FieldInfo[ContactField]{Field: ContactCreatedAt, Kind: filter.KindTemporal, Description: "Creation time"},
)

// Companies describes customer organisations
var Companies = NewEntity("company", "companies", []string{"companies", "org"},
	FieldInfo[CompanyField]{Field: CompanyID, Kind: filter.KindInteger, Description: "Company identifier"},
	FieldInfo[CompanyField]{Field: CompanyName, Kind: filter.KindText},
	FieldInfo[CompanyField]{Field: CompanyDomain, Kind: filter.KindText, Description: "Primary email domain"},
	FieldInfo[CompanyField]{Field: CompanyEmployeeCount, Kind: filter.KindInteger},
	FieldInfo[CompanyField]{Field: CompanyIsCustomer, Kind: filter.KindBoolean, Description: "Has an active contract"},
	FieldInfo[CompanyField]{Field: CompanyCreatedAt, Kind: filter.KindTemporal, Description: "Creation time"},
)

// Assets describes managed hardware and licences
var Assets = NewEntity("asset", "assets", []string{"assets"},
	FieldInfo[AssetField]{Field: AssetID, Kind: filter.KindInteger, Description: "Asset identifier"},
	FieldInfo[AssetField]{Field: AssetName, Kind: filter.KindText},
	FieldInfo[AssetField]{Field: AssetSerialNumber, Kind: filter.KindText},
	FieldInfo[AssetField]{Field: AssetTag, Kind: filter.KindText, Description: "Inventory tag"},
	FieldInfo[AssetField]{Field: AssetCost, Kind: filter.KindInteger, Description: "Purchase cost in cents"},
	FieldInfo[AssetField]{Field: AssetIsRetired, Kind: filter.KindBoolean},
	FieldInfo[AssetField]{Field: AssetPurchasedAt, Kind: filter.KindTemporal},
	FieldInfo[AssetField]{Field: AssetWarrantyExpiresAt, Kind: filter.KindTemporal},
)
