package indexer

import (
	"sync"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/sp0x/scenetime/indexer/status"
	"github.com/sp0x/scenetime/indexer/status/models"
)

const maxReportedErrors = 20

// StatusReporter keeps the latest problems and search outcome of a provider.
type StatusReporter struct {
	mx         sync.Mutex
	site       string
	errors     *arraylist.List
	lastSearch *status.SearchMessage
	now        func() time.Time
}

func newStatusReporter(site string) *StatusReporter {
	return &StatusReporter{
		site:   site,
		errors: arraylist.New(),
		now:    time.Now,
	}
}

func (r *StatusReporter) Error(code string, err error) {
	if err == nil {
		return
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	r.errors.Add(status.ErrorMessage{Code: code, Message: err.Error(), Time: r.now()})
	for r.errors.Size() > maxReportedErrors {
		r.errors.Remove(0)
	}
}

func (r *StatusReporter) Searched(resultsFound int) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.lastSearch = &status.SearchMessage{Code: status.Ok, ResultsFound: resultsFound, Time: r.now()}
}

func (r *StatusReporter) GetErrors() []status.ErrorMessage {
	r.mx.Lock()
	defer r.mx.Unlock()
	errs := make([]status.ErrorMessage, 0, r.errors.Size())
	for _, v := range r.errors.Values() {
		errs = append(errs, v.(status.ErrorMessage))
	}
	return errs
}

func (r *StatusReporter) Status() *models.IndexStatus {
	errs := r.GetErrors()
	r.mx.Lock()
	defer r.mx.Unlock()
	return &models.IndexStatus{
		Index:      r.site,
		LastSearch: r.lastSearch,
		Errors:     errs,
	}
}
