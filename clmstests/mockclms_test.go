package clmstests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// mockCLMS is an in-memory stand-in for the CLMS API, implementing just
// enough of its contract for the suite to run end to end: the response
// envelope, bearer auth, CRUD with unique-key conflicts, borrow state
// transitions, and the analytics/automation/self-service read endpoints.
type mockCLMS struct {
	mu        sync.Mutex
	nextID    int
	token     string
	students  map[int]map[string]interface{}
	books     map[int]map[string]interface{}
	equipment map[int]map[string]interface{}
	borrows   map[int]map[string]interface{}
	barcodes  map[string]int

	authedRequests int // requests served past the auth check, login excluded

	// failure injection
	createStudentStatus int // if nonzero, POST /students always returns this
	duplicateStatus     int // status for a duplicate student_id
}

func newMockCLMS() *mockCLMS {
	return &mockCLMS{
		token:           "mock-token",
		students:        map[int]map[string]interface{}{},
		books:           map[int]map[string]interface{}{},
		equipment:       map[int]map[string]interface{}{},
		borrows:         map[int]map[string]interface{}{},
		barcodes:        map[string]int{},
		duplicateStatus: 409,
	}
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func okData(data interface{}) map[string]interface{} {
	return map[string]interface{}{"success": true, "data": data}
}

func failMessage(message string) map[string]interface{} {
	return map[string]interface{}{"success": false, "message": message}
}

func decodeBody(r *http.Request) map[string]interface{} {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body
}

func (m *mockCLMS) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", m.login)

	mux.HandleFunc("POST /students", m.createStudent)
	mux.HandleFunc("GET /students", func(w http.ResponseWriter, r *http.Request) {
		m.list(w, m.students)
	})
	mux.HandleFunc("GET /students/search", func(w http.ResponseWriter, r *http.Request) {
		m.list(w, m.students)
	})
	mux.HandleFunc("GET /students/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.getOne(w, r, m.students)
	})
	mux.HandleFunc("PUT /students/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.update(w, r, m.students)
	})
	mux.HandleFunc("DELETE /students/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.delete(w, r, m.students)
	})
	mux.HandleFunc("POST /students/generate-barcode/{id}", m.generateBarcode)
	mux.HandleFunc("GET /students/barcode/{barcode}", m.studentByBarcode)

	mux.HandleFunc("POST /books", m.createBook)
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		m.list(w, m.books)
	})
	mux.HandleFunc("GET /books/search", func(w http.ResponseWriter, r *http.Request) {
		m.list(w, m.books)
	})
	mux.HandleFunc("GET /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.getOne(w, r, m.books)
	})
	mux.HandleFunc("GET /books/{id}/availability", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, found := m.lookup(r, m.books); !found {
			writeEnvelope(w, 404, failMessage("book not found"))
			return
		}
		writeEnvelope(w, 200, okData(map[string]interface{}{"available": true, "copies": 1}))
	})
	mux.HandleFunc("PUT /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.update(w, r, m.books)
	})
	mux.HandleFunc("DELETE /books/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.delete(w, r, m.books)
	})

	mux.HandleFunc("POST /equipment", m.createEquipment)
	mux.HandleFunc("GET /equipment", func(w http.ResponseWriter, r *http.Request) {
		m.list(w, m.equipment)
	})
	mux.HandleFunc("GET /equipment/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.getOne(w, r, m.equipment)
	})
	mux.HandleFunc("PUT /equipment/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.update(w, r, m.equipment)
	})
	mux.HandleFunc("DELETE /equipment/{id}", func(w http.ResponseWriter, r *http.Request) {
		m.delete(w, r, m.equipment)
	})

	mux.HandleFunc("POST /borrows", m.createBorrow)
	mux.HandleFunc("GET /borrows", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		records := recordList(m.borrows)
		writeEnvelope(w, 200, map[string]interface{}{
			"success":    true,
			"data":       records,
			"pagination": map[string]interface{}{"total": len(records), "page": 1, "limit": 50},
		})
	})
	mux.HandleFunc("GET /borrows/overdue", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData([]interface{}{}))
	})
	mux.HandleFunc("GET /borrows/student/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData([]interface{}{}))
	})
	mux.HandleFunc("PUT /borrows/{id}/return", m.returnBorrow)
	mux.HandleFunc("PUT /borrows/{id}/fine", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		rec, found := m.lookup(r, m.borrows)
		if !found {
			writeEnvelope(w, 404, failMessage("borrow not found"))
			return
		}
		body := decodeBody(r)
		rec["fine_amount"] = body["fine_amount"]
		writeEnvelope(w, 200, okData(rec))
	})

	mux.HandleFunc("GET /analytics/dashboard", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		writeEnvelope(w, 200, okData(map[string]interface{}{
			"overview": map[string]interface{}{"total_students": len(m.students)},
		}))
	})
	for _, p := range []string{"students", "books", "borrows", "equipment"} {
		mux.HandleFunc("GET /analytics/"+p, func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, 200, okData(map[string]interface{}{}))
		})
	}
	mux.HandleFunc("GET /analytics/export", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData([]interface{}{}))
	})

	mux.HandleFunc("GET /equipment/automation/statistics", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		writeEnvelope(w, 200, okData(map[string]interface{}{
			"totalEquipment":       len(m.equipment),
			"availableEquipment":   len(m.equipment),
			"inUseEquipment":       0,
			"maintenanceEquipment": 0,
			"overdueEquipment":     0,
			"utilizationRate":      0,
		}))
	})
	mux.HandleFunc("GET /equipment/automation/overdue", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData([]interface{}{}))
	})
	mux.HandleFunc("GET /equipment/automation/maintenance", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData([]interface{}{}))
	})
	mux.HandleFunc("GET /equipment/automation/analytics", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData(map[string]interface{}{
			"period_days":     30,
			"equipment_usage": []interface{}{},
		}))
	})
	mux.HandleFunc("POST /equipment/automation/notifications/overdue", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData(map[string]interface{}{"sent": 0, "failed": 0}))
	})
	mux.HandleFunc("POST /equipment/automation/maintenance/schedule", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData(map[string]interface{}{"scheduled": 0}))
	})
	mux.HandleFunc("POST /equipment/automation/auto-return", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData(map[string]interface{}{"returned": 0, "errors": 0}))
	})
	mux.HandleFunc("POST /equipment/automation/run-cycle", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData(map[string]interface{}{
			"overdue_count":                   0,
			"maintenance_count":               0,
			"notifications_sent":              0,
			"maintenance_reminders_scheduled": 0,
			"automation_cycle":                "completed",
		}))
	})

	mux.HandleFunc("GET /self-service/status/{barcode}", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, known := m.barcodes[r.PathValue("barcode")]; !known {
			writeEnvelope(w, 404, failMessage("barcode not found"))
			return
		}
		writeEnvelope(w, 200, okData(map[string]interface{}{
			"isCheckedIn": false, "canCheckIn": true,
		}))
	})
	for _, p := range []string{"check-in", "check-out", "scan"} {
		mux.HandleFunc("POST /self-service/"+p, func(w http.ResponseWriter, r *http.Request) {
			m.mu.Lock()
			defer m.mu.Unlock()
			body := decodeBody(r)
			scanData, _ := body["scanData"].(string)
			if _, known := m.barcodes[scanData]; !known {
				writeEnvelope(w, 200, failMessage("unrecognized barcode"))
				return
			}
			writeEnvelope(w, 200, map[string]interface{}{"success": true, "message": "processed"})
		})
	}
	mux.HandleFunc("GET /self-service/statistics", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, okData(map[string]interface{}{
			"totalCheckIns": 1, "uniqueStudents": 1, "averageTimeSpent": 10,
		}))
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			if r.Header.Get("Authorization") != "Bearer "+m.token {
				writeEnvelope(w, 401, failMessage("unauthorized"))
				return
			}
			m.mu.Lock()
			m.authedRequests++
			m.mu.Unlock()
		}
		mux.ServeHTTP(w, r)
	})
}

func (m *mockCLMS) login(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)
	if body["username"] == "admin" && body["password"] == "admin123" {
		writeEnvelope(w, 200, okData(map[string]interface{}{"accessToken": m.token}))
		return
	}
	writeEnvelope(w, 401, failMessage("invalid credentials"))
}

func (m *mockCLMS) allocateID() int {
	m.nextID++
	return m.nextID
}

func (m *mockCLMS) lookup(r *http.Request, store map[int]map[string]interface{}) (map[string]interface{}, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return nil, false
	}
	rec, found := store[id]
	return rec, found
}

func recordList(store map[int]map[string]interface{}) []interface{} {
	records := make([]interface{}, 0, len(store))
	for _, rec := range store {
		records = append(records, rec)
	}
	return records
}

func (m *mockCLMS) list(w http.ResponseWriter, store map[int]map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := recordList(store)
	writeEnvelope(w, 200, map[string]interface{}{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

func (m *mockCLMS) getOne(w http.ResponseWriter, r *http.Request, store map[int]map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, found := m.lookup(r, store)
	if !found {
		writeEnvelope(w, 404, failMessage("not found"))
		return
	}
	writeEnvelope(w, 200, okData(rec))
}

func (m *mockCLMS) update(w http.ResponseWriter, r *http.Request, store map[int]map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, found := m.lookup(r, store)
	if !found {
		writeEnvelope(w, 404, failMessage("not found"))
		return
	}
	for k, v := range decodeBody(r) {
		rec[k] = v
	}
	writeEnvelope(w, 200, okData(rec))
}

func (m *mockCLMS) delete(w http.ResponseWriter, r *http.Request, store map[int]map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeEnvelope(w, 404, failMessage("not found"))
		return
	}
	if _, found := store[id]; !found {
		writeEnvelope(w, 404, failMessage("not found"))
		return
	}
	delete(store, id)
	writeEnvelope(w, 200, okData(map[string]interface{}{"id": id}))
}

func (m *mockCLMS) createStudent(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createStudentStatus != 0 {
		writeEnvelope(w, m.createStudentStatus, failMessage("injected failure"))
		return
	}
	body := decodeBody(r)
	for _, field := range []string{"student_id", "first_name", "last_name"} {
		if s, _ := body[field].(string); s == "" {
			writeEnvelope(w, 400, failMessage("missing required field "+field))
			return
		}
	}
	for _, rec := range m.students {
		if rec["student_id"] == body["student_id"] {
			writeEnvelope(w, m.duplicateStatus, failMessage("Student with this ID already exists"))
			return
		}
	}
	id := m.allocateID()
	body["id"] = id
	m.students[id] = body
	writeEnvelope(w, 201, okData(body))
}

func (m *mockCLMS) createBook(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body := decodeBody(r)
	if s, _ := body["title"].(string); s == "" {
		writeEnvelope(w, 400, failMessage("missing required field title"))
		return
	}
	id := m.allocateID()
	body["id"] = id
	m.books[id] = body
	writeEnvelope(w, 201, okData(body))
}

func (m *mockCLMS) createEquipment(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body := decodeBody(r)
	if s, _ := body["serial_number"].(string); s == "" {
		writeEnvelope(w, 400, failMessage("missing required field serial_number"))
		return
	}
	id := m.allocateID()
	body["id"] = id
	m.equipment[id] = body
	writeEnvelope(w, 201, okData(body))
}

func (m *mockCLMS) createBorrow(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body := decodeBody(r)
	bookID, okBook := body["book_id"].(float64)
	studentID, okStudent := body["student_id"].(float64)
	if !okBook || !okStudent {
		writeEnvelope(w, 400, failMessage("book_id and student_id are required"))
		return
	}
	if _, found := m.books[int(bookID)]; !found {
		writeEnvelope(w, 404, failMessage("book not found"))
		return
	}
	if _, found := m.students[int(studentID)]; !found {
		writeEnvelope(w, 404, failMessage("student not found"))
		return
	}
	id := m.allocateID()
	body["id"] = id
	body["status"] = "ACTIVE"
	m.borrows[id] = body
	writeEnvelope(w, 201, okData(body))
}

func (m *mockCLMS) returnBorrow(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, found := m.lookup(r, m.borrows)
	if !found {
		writeEnvelope(w, 404, failMessage("borrow not found"))
		return
	}
	rec["status"] = "RETURNED"
	rec["return_date"] = time.Now().Format(time.RFC3339)
	writeEnvelope(w, 200, okData(rec))
}

func (m *mockCLMS) generateBarcode(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeEnvelope(w, 404, failMessage("not found"))
		return
	}
	rec, found := m.students[id]
	if !found {
		writeEnvelope(w, 404, failMessage("not found"))
		return
	}
	barcode := fmt.Sprintf("9%010d", id)
	rec["barcode"] = barcode
	m.barcodes[barcode] = id
	writeEnvelope(w, 200, okData(map[string]interface{}{"barcode": barcode}))
}

func (m *mockCLMS) studentByBarcode(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, known := m.barcodes[r.PathValue("barcode")]
	if !known {
		writeEnvelope(w, 404, failMessage("barcode not found"))
		return
	}
	writeEnvelope(w, 200, okData(m.students[id]))
}
