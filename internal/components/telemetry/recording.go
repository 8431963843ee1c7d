package telemetry

import "sync"

type Report struct {
	Kind   string
	Id     string
	Params []any
	Count  int64
}

// RecordingAPI keeps every report in memory, it is meant for asserting on
// reports in tests.
type RecordingAPI struct {
	mutex   sync.Mutex
	reports []Report
}

func NewRecordingAPI() *RecordingAPI {
	return &RecordingAPI{}
}

func (r *RecordingAPI) record(report Report) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, report)
}

func (r *RecordingAPI) ReportBroken(id string, params ...any) {
	r.record(Report{Kind: "broken", Id: id, Params: params})
}

func (r *RecordingAPI) ReportWarning(id string, params ...any) {
	r.record(Report{Kind: "warning", Id: id, Params: params})
}

func (r *RecordingAPI) ReportDebug(msg string, params ...any) {
	r.record(Report{Kind: "debug", Id: msg, Params: params})
}

func (r *RecordingAPI) ReportCount(id string, count int64) {
	r.record(Report{Kind: "count", Id: id, Count: count})
}

// Reports returns a copy of the reports of the given kind ("broken", "warning",
// "debug", "count"), all of them if kind is empty.
func (r *RecordingAPI) Reports(kind string) []Report {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var out []Report
	for _, report := range r.reports {
		if kind == "" || report.Kind == kind {
			out = append(out, report)
		}
	}
	return out
}
