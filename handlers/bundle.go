package handlers

// HandlerBundle groups the handlers the route registration needs.
type HandlerBundle struct {
	Catalog   *CatalogHandler
	Jobs      *JobHandler
	Reporting *ReportingHandler
}
