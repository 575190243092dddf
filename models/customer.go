package models

// Customer columns that are required to be present and non-empty on every
// create and full update.
const (
	CustomerColumnName  = "name"
	CustomerColumnEmail = "email"
)

// CustomerColumns is the authoritative ordered schema of the customers table
// as it is writable by clients. It deliberately excludes the server-assigned
// "id" and "created_at" columns. The attribute set is wide and flat; the
// section grouping below is documentation only, the table has no nested
// structure.
//
// Both the payload validator and the customer repository are driven by this
// single list: a request key that is not found here is rejected before any
// SQL is built.
var CustomerColumns = []string{
	// identity and profile
	"name",
	"email",
	"phone",
	"company",
	"notes",
	"goal_overview",
	"personal_information",
	"address",
	"birthday",
	"job_title",
	"industry",
	// business information
	"company_size",
	"annual_revenue",
	"website",
	"linkedin_url",
	"twitter_url",
	"facebook_url",
	"business_type",
	"founded_year",
	"employee_count",
	"business_address",
	"business_phone",
	"tax_id",
	"payment_terms",
	"credit_limit",
	// business financial information
	"credit_score",
	"outstanding_balance",
	"total_purchases",
	"average_order_value",
	"last_payment_date",
	"payment_history",
	"financial_rating",
	"risk_assessment",
	"bank_references",
	"insurance_info",
	"financial_statements",
	"cash_flow_status",
	"debt_to_income_ratio",
	"profit_margin",
	// business credit information
	"credit_report_link",
	"credit_report_date",
	"credit_bureau",
	"credit_limit_requested",
	"credit_application_status",
	"credit_documents_uploaded",
	"credit_history_summary",
	"credit_notes",
	"credit_approval_date",
	"credit_review_date",
	"credit_conditions",
	"credit_guarantor",
	"credit_collateral",
	"credit_terms_approved",
	"credit_monitoring_status",
	"duns_number",
	"business_credit_score",
	"paydex_score",
	"business_failure_score",
	"business_credit_utilization",
	// personal credit information
	"personal_credit_score",
	"personal_credit_report_link",
	"personal_credit_report_date",
	"personal_credit_bureau",
	"personal_credit_history",
	"personal_credit_notes",
	"personal_credit_application_status",
	"personal_credit_limit_requested",
	"personal_credit_approval_date",
	"personal_credit_review_date",
	"personal_credit_conditions",
	"personal_credit_guarantor",
	"personal_credit_collateral",
	"personal_credit_terms_approved",
	"personal_credit_monitoring_status",
	"personal_credit_documents_uploaded",
	// email communication
	"email_preferences",
	"email_template_category",
	"last_email_sent",
	"email_frequency",
	"email_opt_in_status",
	"email_notes",
}

// customerColumnSet is the lookup index over CustomerColumns.
var customerColumnSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CustomerColumns))
	for _, column := range CustomerColumns {
		set[column] = struct{}{}
	}
	return set
}()

// KnownCustomerColumn reports whether name is a client-writable column of the
// customers table.
func KnownCustomerColumn(name string) bool {
	_, ok := customerColumnSet[name]
	return ok
}

// CustomerFields is the client-supplied portion of a customer record: a flat
// mapping of column name to value. The set of keys present in the mapping
// drives the column list of the generated INSERT or UPDATE statement, so it
// must be validated against CustomerColumns before it reaches the repository.
type CustomerFields map[string]any

// String returns the value of the named field as a string. Missing keys and
// non-string values yield "".
func (f CustomerFields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Customer is a persisted customer row keyed by column name, including the
// server-assigned "id" and "created_at" columns. Rows are materialized
// dynamically from the result-set column list, which keeps reads in lockstep
// with the schema without a hand-maintained scan list.
type Customer map[string]any

// ID returns the server-assigned row identifier, or 0 when absent.
func (c Customer) ID() int64 {
	switch id := c["id"].(type) {
	case int64:
		return id
	case float64:
		return int64(id)
	default:
		return 0
	}
}

// Name returns the customer's name column value.
func (c Customer) Name() string {
	s, _ := c["name"].(string)
	return s
}

// Email returns the customer's email column value.
func (c Customer) Email() string {
	s, _ := c["email"].(string)
	return s
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}
