package store

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"testing"
	"time"

	"staff-portal/internal/models"
	"staff-portal/internal/storage"

	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func newTestStore(t *testing.T) (*Store, *storage.Memory, *bytes.Buffer) {
	t.Helper()
	slot := storage.NewMemory()
	var buf bytes.Buffer
	s := New(slot, Options{Logger: log.New(&buf, "", 0), Now: fixedClock()})
	s.Load()
	return s, slot, &buf
}

func TestLoadEmptySeeds(t *testing.T) {
	s, slot, _ := newTestStore(t)

	accounts := s.Accounts()
	require.Len(t, accounts, 1)
	require.Equal(t, DefaultAdminEmail, accounts[0].Email)
	require.Equal(t, models.RoleAdmin, accounts[0].Role)
	require.True(t, accounts[0].Verified)

	depts := s.Departments()
	require.Len(t, depts, 2)
	require.Equal(t, "Engineering", depts[0].Name)
	require.Equal(t, "HR", depts[1].Name)

	require.Empty(t, s.Employees())
	require.Empty(t, s.Requests())

	raw, err := slot.Get(DefaultKey)
	require.NoError(t, err)
	require.Contains(t, raw, `"accounts"`)
}

func TestLoadCorruptReseeds(t *testing.T) {
	cases := map[string]string{
		"not json":          "{oops",
		"missing employees": `{"accounts":[],"departments":[],"requests":[]}`,
		"null requests":     `{"accounts":[],"departments":[],"employees":[],"requests":null}`,
		"object accounts":   `{"accounts":{},"departments":[],"employees":[],"requests":[]}`,
		"bad entity":        `{"accounts":[{"id":"x"}],"departments":[],"employees":[],"requests":[]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			slot := storage.NewMemory()
			require.NoError(t, slot.Set(DefaultKey, raw))
			var buf bytes.Buffer
			s := New(slot, Options{Logger: log.New(&buf, "", 0), Now: fixedClock()})
			s.Load()

			require.Len(t, s.Accounts(), 1)
			require.Len(t, s.Departments(), 2)
			require.Contains(t, buf.String(), "seeding defaults")

			stored, err := slot.Get(DefaultKey)
			require.NoError(t, err)
			_, err = decodeSnapshot(stored)
			require.NoError(t, err)
		})
	}
}

func TestLoadRestoresMissingAdminAtFront(t *testing.T) {
	slot := storage.NewMemory()
	raw := `{"accounts":[{"id":5,"firstName":"A","lastName":"B","email":"a@b.c","password":"x","verified":true,"role":"user"}],` +
		`"departments":[],"employees":[],"requests":[]}`
	require.NoError(t, slot.Set(DefaultKey, raw))

	s := New(slot, Options{Logger: log.New(&bytes.Buffer{}, "", 0), Now: fixedClock()})
	s.Load()

	accounts := s.Accounts()
	require.Len(t, accounts, 2)
	require.Equal(t, DefaultAdminEmail, accounts[0].Email)
	require.Equal(t, "a@b.c", accounts[1].Email)
	require.Empty(t, s.Departments())

	stored, err := slot.Get(DefaultKey)
	require.NoError(t, err)
	require.Contains(t, stored, DefaultAdminEmail)
}

func TestLoadValidStorageDoesNotWrite(t *testing.T) {
	s, slot, _ := newTestStore(t)
	_, err := s.CreateDepartment(DepartmentInput{Name: "Ops"})
	require.NoError(t, err)
	before, err := slot.Get(DefaultKey)
	require.NoError(t, err)

	// любая запись теперь упадёт и попадёт в лог
	slot.FailWrites = errors.New("read-only")
	var buf bytes.Buffer
	reloaded := New(slot, Options{Logger: log.New(&buf, "", 0), Now: fixedClock()})
	reloaded.Load()

	require.Empty(t, buf.String())
	require.Len(t, reloaded.Departments(), 3)
	after, err := slot.Get(DefaultKey)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRenamedAdminKeepsIDsUnique(t *testing.T) {
	s, slot, _ := newTestStore(t)
	_, err := s.UpdateAccount(1, AccountInput{FirstName: "Big", LastName: "Boss", Email: "boss@example.com"})
	require.NoError(t, err)

	reloaded := New(slot, Options{Logger: log.New(&bytes.Buffer{}, "", 0), Now: fixedClock()})
	reloaded.Load()

	accounts := reloaded.Accounts()
	require.Len(t, accounts, 2)
	require.Equal(t, DefaultAdminEmail, accounts[0].Email)
	require.NotEqual(t, int64(1), accounts[0].ID)
	require.Equal(t, "boss@example.com", accounts[1].Email)
	require.Equal(t, int64(1), accounts[1].ID)

	require.NoError(t, reloaded.DeleteAccount(1, 999))
	accounts = reloaded.Accounts()
	require.Len(t, accounts, 1)
	require.Equal(t, DefaultAdminEmail, accounts[0].Email)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, slot, _ := newTestStore(t)

	acc, err := s.CreateAccountAsAdmin(AccountInput{FirstName: "Jane", LastName: "Doe", Email: "jane@x.io", Password: "secret1", Verified: true})
	require.NoError(t, err)
	dept, err := s.CreateDepartment(DepartmentInput{Name: "Ops"})
	require.NoError(t, err)
	_, err = s.CreateEmployee(EmployeeInput{EmployeeID: "E-1", UserEmail: acc.Email, DeptID: dept.ID, Position: "SRE", HireDate: "2026-01-02"})
	require.NoError(t, err)
	_, err = s.CreateRequest(acc.Email, "Supplies", []models.Item{{Name: "pen", Qty: 3}})
	require.NoError(t, err)

	reloaded := New(slot, Options{Logger: log.New(&bytes.Buffer{}, "", 0), Now: fixedClock()})
	reloaded.Load()

	require.Equal(t, s.Accounts(), reloaded.Accounts())
	require.Equal(t, s.Departments(), reloaded.Departments())
	require.Equal(t, s.Employees(), reloaded.Employees())
	require.Equal(t, s.Requests(), reloaded.Requests())
}

func TestSaveFailureIsLoggedNotReturned(t *testing.T) {
	s, slot, buf := newTestStore(t)
	slot.FailWrites = errors.New("quota exceeded")

	d, err := s.CreateDepartment(DepartmentInput{Name: "Legal"})
	require.NoError(t, err)

	_, ok := s.DepartmentByID(d.ID)
	require.True(t, ok)
	require.Contains(t, buf.String(), ErrStorageWriteFailed.Error())
	require.Contains(t, buf.String(), "quota exceeded")
}

func TestCreateAccountUniqueEmail(t *testing.T) {
	s, _, _ := newTestStore(t)

	emails := []string{"a@x.io", "b@x.io", "a@x.io", DefaultAdminEmail, "A@x.io", "b@x.io"}
	for _, e := range emails {
		_, err := s.CreateAccount(AccountInput{FirstName: "F", LastName: "L", Email: e, Password: "pw"})
		if err != nil {
			require.ErrorIs(t, err, ErrDuplicateEmail)
		}
	}

	seen := map[string]bool{}
	for _, a := range s.Accounts() {
		require.False(t, seen[a.Email], "duplicate email %s", a.Email)
		seen[a.Email] = true
	}
	// сравнение email регистрозависимое
	require.True(t, seen["A@x.io"])
	require.Len(t, s.Accounts(), 4)
}

func TestCreateAccountDefaults(t *testing.T) {
	s, _, _ := newTestStore(t)

	acc, err := s.CreateAccount(AccountInput{FirstName: "F", LastName: "L", Email: "f@x.io", Password: "pw", Role: models.RoleAdmin, Verified: true})
	require.NoError(t, err)
	require.False(t, acc.Verified)
	require.Equal(t, models.RoleUser, acc.Role)

	adm, err := s.CreateAccountAsAdmin(AccountInput{FirstName: "G", LastName: "L", Email: "g@x.io", Password: "pw", Role: models.RoleAdmin, Verified: true})
	require.NoError(t, err)
	require.True(t, adm.Verified)
	require.Equal(t, models.RoleAdmin, adm.Role)
	require.NotEqual(t, acc.ID, adm.ID)

	_, err = s.CreateAccount(AccountInput{FirstName: "F", LastName: "L", Email: "h@x.io"})
	require.ErrorIs(t, err, ErrMissingField)

	_, err = s.CreateAccountAsAdmin(AccountInput{FirstName: "F", LastName: "L", Email: "i@x.io", Password: "pw", Role: "root"})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestUniqueIDsWithFrozenClock(t *testing.T) {
	s, _, _ := newTestStore(t)
	ids := map[int64]bool{}
	for i := 0; i < 20; i++ {
		acc, err := s.CreateAccount(AccountInput{FirstName: "F", LastName: "L", Email: fmt.Sprintf("u%d@x.io", i), Password: "pw"})
		require.NoError(t, err)
		require.False(t, ids[acc.ID])
		ids[acc.ID] = true
	}
}

func TestUpdateAccount(t *testing.T) {
	s, _, _ := newTestStore(t)
	a, err := s.CreateAccount(AccountInput{FirstName: "A", LastName: "A", Email: "a@x.io", Password: "old-pw"})
	require.NoError(t, err)
	_, err = s.CreateAccount(AccountInput{FirstName: "B", LastName: "B", Email: "b@x.io", Password: "pw"})
	require.NoError(t, err)

	_, err = s.UpdateAccount(999, AccountInput{FirstName: "X", LastName: "X", Email: "x@x.io"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateAccount(a.ID, AccountInput{FirstName: "A", LastName: "A", Email: "b@x.io"})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// тот же email у самого себя — не конфликт; пустой пароль не меняет старый
	got, err := s.UpdateAccount(a.ID, AccountInput{FirstName: "Ann", LastName: "A", Email: "a@x.io", Verified: true})
	require.NoError(t, err)
	require.Equal(t, "Ann", got.FirstName)
	require.Equal(t, "old-pw", got.Password)
	require.True(t, got.Verified)
	require.Equal(t, models.RoleUser, got.Role)

	got, err = s.UpdateAccount(a.ID, AccountInput{FirstName: "Ann", LastName: "A", Email: "a@x.io", Password: "new-pw", Role: models.RoleAdmin})
	require.NoError(t, err)
	require.Equal(t, "new-pw", got.Password)
	require.Equal(t, models.RoleAdmin, got.Role)
}

func TestResetPasswordAndVerify(t *testing.T) {
	s, _, _ := newTestStore(t)
	a, err := s.CreateAccount(AccountInput{FirstName: "A", LastName: "A", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)

	_, err = s.ResetPassword(a.ID, "12345")
	require.ErrorIs(t, err, ErrPasswordTooShort)
	_, err = s.ResetPassword(42, "123456")
	require.ErrorIs(t, err, ErrNotFound)
	got, err := s.ResetPassword(a.ID, "123456")
	require.NoError(t, err)
	require.Equal(t, "123456", got.Password)

	got, err = s.VerifyAccount("a@x.io")
	require.NoError(t, err)
	require.True(t, got.Verified)
	_, err = s.VerifyAccount("nobody@x.io")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAccount(t *testing.T) {
	s, _, _ := newTestStore(t)
	admin, ok := s.AccountByEmail(DefaultAdminEmail)
	require.True(t, ok)
	a, err := s.CreateAccount(AccountInput{FirstName: "A", LastName: "A", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)
	before := s.Accounts()

	require.ErrorIs(t, s.DeleteAccount(admin.ID, admin.ID), ErrSelfDeletion)
	require.Equal(t, before, s.Accounts())

	require.ErrorIs(t, s.DeleteAccount(777, admin.ID), ErrNotFound)

	// сотрудник на этот аккаунт удалению не мешает
	_, err = s.CreateEmployee(EmployeeInput{EmployeeID: "E1", UserEmail: "a@x.io", DeptID: 1, Position: "Dev", HireDate: "2026-01-01"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteAccount(a.ID, admin.ID))
	_, ok = s.AccountByID(a.ID)
	require.False(t, ok)

	rows := s.EmployeeRows()
	require.Len(t, rows, 1)
	require.Equal(t, "Unknown", rows[0].UserName)
	require.Equal(t, "Engineering", rows[0].DeptName)
}

func TestDeleteDepartmentInUse(t *testing.T) {
	s, _, _ := newTestStore(t)

	emp, err := s.CreateEmployee(EmployeeInput{EmployeeID: "E1", UserEmail: DefaultAdminEmail, DeptID: 1, Position: "Lead", HireDate: "2025-05-05"})
	require.NoError(t, err)

	err = s.DeleteDepartment(1)
	require.ErrorIs(t, err, ErrInUse)
	require.Contains(t, err.Error(), `"Engineering"`)
	require.Len(t, s.Departments(), 2)

	require.NoError(t, s.DeleteDepartment(2))
	depts := s.Departments()
	require.Len(t, depts, 1)
	require.Equal(t, int64(1), depts[0].ID)

	require.ErrorIs(t, s.DeleteDepartment(2), ErrNotFound)

	require.NoError(t, s.DeleteEmployee(emp.ID))
	require.NoError(t, s.DeleteDepartment(1))
	require.Empty(t, s.Departments())
}

func TestDepartmentCreateUpdate(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.CreateDepartment(DepartmentInput{Name: "  "})
	require.ErrorIs(t, err, ErrMissingField)

	d1, err := s.CreateDepartment(DepartmentInput{Name: "HR"})
	require.NoError(t, err)
	require.Len(t, s.Departments(), 3)

	got, err := s.UpdateDepartment(d1.ID, DepartmentInput{Name: "People", Description: " hiring "})
	require.NoError(t, err)
	require.Equal(t, "People", got.Name)
	require.Equal(t, "hiring", got.Description)

	_, err = s.UpdateDepartment(12345, DepartmentInput{Name: "X"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeLifecycle(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.CreateEmployee(EmployeeInput{EmployeeID: "E1", UserEmail: "ghost@x.io", DeptID: 1, Position: "Dev", HireDate: "2026-01-01"})
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, s.Employees())

	e1, err := s.CreateEmployee(EmployeeInput{EmployeeID: "E1", UserEmail: DefaultAdminEmail, DeptID: 1, Position: "Dev", HireDate: "2026-01-01"})
	require.NoError(t, err)
	e2, err := s.CreateEmployee(EmployeeInput{EmployeeID: "E1", UserEmail: DefaultAdminEmail, DeptID: 2, Position: "Ops", HireDate: "2026-01-01"})
	require.NoError(t, err)
	require.NotEqual(t, e1.ID, e2.ID)

	_, err = s.UpdateEmployee("missing", EmployeeInput{EmployeeID: "E1", UserEmail: DefaultAdminEmail, Position: "Dev", HireDate: "2026-01-01"})
	require.ErrorIs(t, err, ErrNotFound)

	got, err := s.UpdateEmployee(e1.ID, EmployeeInput{EmployeeID: "E9", UserEmail: DefaultAdminEmail, DeptID: 2, Position: "Manager", HireDate: "2026-02-01"})
	require.NoError(t, err)
	require.Equal(t, "E9", got.EmployeeID)
	require.Equal(t, int64(2), got.DeptID)

	require.ErrorIs(t, s.DeleteEmployee("missing"), ErrNotFound)
	require.NoError(t, s.DeleteEmployee(e1.ID))
	require.Len(t, s.Employees(), 1)
}

func TestCreateRequest(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.CreateRequest("a@x.io", "Equipment", []models.Item{{Name: "  ", Qty: 2}, {Name: ""}})
	require.ErrorIs(t, err, ErrEmptyItems)
	require.Empty(t, s.Requests())

	r, err := s.CreateRequest("a@x.io", "", []models.Item{{Name: " laptop ", Qty: 0}, {Name: ""}, {Name: "mouse", Qty: 2}})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, r.Status)
	require.Equal(t, "2026-03-14", r.Date)
	require.Equal(t, DefaultRequestType, r.Type)
	require.Equal(t, []models.Item{{Name: "laptop", Qty: 1}, {Name: "mouse", Qty: 2}}, r.Items)
}

func TestCancelRequest(t *testing.T) {
	s, _, _ := newTestStore(t)
	r, err := s.CreateRequest("a@x.io", "Equipment", []models.Item{{Name: "pen", Qty: 1}})
	require.NoError(t, err)

	require.ErrorIs(t, s.CancelRequest("missing", "a@x.io"), ErrNotFound)
	require.ErrorIs(t, s.CancelRequest(r.ID, "b@x.io"), ErrNotFound)

	approved, err := s.SetRequestStatus(r.ID, models.StatusApproved)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, approved.Status)

	require.ErrorIs(t, s.CancelRequest(r.ID, "a@x.io"), ErrInvalidState)
	got, ok := s.RequestByID(r.ID)
	require.True(t, ok)
	require.Equal(t, approved, got)

	pending, err := s.CreateRequest("a@x.io", "Equipment", []models.Item{{Name: "pad", Qty: 1}})
	require.NoError(t, err)
	require.NoError(t, s.CancelRequest(pending.ID, "a@x.io"))
	_, ok = s.RequestByID(pending.ID)
	require.False(t, ok)
}

func TestSetRequestStatus(t *testing.T) {
	s, _, _ := newTestStore(t)
	r, err := s.CreateRequest("a@x.io", "Equipment", []models.Item{{Name: "pen", Qty: 1}})
	require.NoError(t, err)

	_, err = s.SetRequestStatus(r.ID, models.StatusPending)
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = s.SetRequestStatus("missing", models.StatusRejected)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.SetRequestStatus(r.ID, models.StatusRejected)
	require.NoError(t, err)
	_, err = s.SetRequestStatus(r.ID, models.StatusApproved)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRequestsForSortsNewestFirst(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	slot := storage.NewMemory()
	s := New(slot, Options{Logger: log.New(&bytes.Buffer{}, "", 0), Now: func() time.Time { return now }})
	s.Load()

	_, err := s.CreateRequest("a@x.io", "Equipment", []models.Item{{Name: "old", Qty: 1}})
	require.NoError(t, err)
	now = now.AddDate(0, 1, 0)
	_, err = s.CreateRequest("b@x.io", "Equipment", []models.Item{{Name: "other", Qty: 1}})
	require.NoError(t, err)
	_, err = s.CreateRequest("a@x.io", "Equipment", []models.Item{{Name: "new", Qty: 1}})
	require.NoError(t, err)

	mine := s.RequestsFor("a@x.io")
	require.Len(t, mine, 2)
	require.Equal(t, "new", mine[0].Items[0].Name)
	require.Equal(t, "old", mine[1].Items[0].Name)
}

func TestReadsReturnCopies(t *testing.T) {
	s, _, _ := newTestStore(t)
	accounts := s.Accounts()
	accounts[0].Email = "changed@x.io"
	_, ok := s.AccountByEmail(DefaultAdminEmail)
	require.True(t, ok)
}

func TestChecksDoNotMutate(t *testing.T) {
	s, slot, _ := newTestStore(t)
	acc, err := s.CreateAccountAsAdmin(AccountInput{FirstName: "U", LastName: "One", Email: "u@x.io", Password: "pw1234", Verified: true})
	require.NoError(t, err)
	emp, err := s.CreateEmployee(EmployeeInput{EmployeeID: "E1", UserEmail: acc.Email, DeptID: 1, Position: "Dev", HireDate: "2025-05-05"})
	require.NoError(t, err)
	r, err := s.CreateRequest(acc.Email, "", []models.Item{{Name: "pen", Qty: 1}})
	require.NoError(t, err)
	done, err := s.CreateRequest(acc.Email, "", []models.Item{{Name: "desk", Qty: 1}})
	require.NoError(t, err)
	_, err = s.SetRequestStatus(done.ID, models.StatusRejected)
	require.NoError(t, err)
	before, err := slot.Get(DefaultKey)
	require.NoError(t, err)

	require.ErrorIs(t, s.CheckDeleteAccount(1, 1), ErrSelfDeletion)
	require.ErrorIs(t, s.CheckDeleteAccount(42, 1), ErrNotFound)
	require.NoError(t, s.CheckDeleteAccount(acc.ID, 1))

	require.ErrorIs(t, s.CheckDeleteDepartment(1), ErrInUse)
	require.ErrorIs(t, s.CheckDeleteDepartment(42), ErrNotFound)
	require.NoError(t, s.CheckDeleteDepartment(2))

	require.ErrorIs(t, s.CheckDeleteEmployee("nope"), ErrNotFound)
	require.NoError(t, s.CheckDeleteEmployee(emp.ID))

	require.ErrorIs(t, s.CheckCancelRequest(r.ID, "other@x.io"), ErrNotFound)
	require.ErrorIs(t, s.CheckCancelRequest(done.ID, acc.Email), ErrInvalidState)
	require.NoError(t, s.CheckCancelRequest(r.ID, acc.Email))

	require.Len(t, s.Accounts(), 2)
	require.Len(t, s.Departments(), 2)
	require.Len(t, s.Employees(), 1)
	require.Len(t, s.Requests(), 2)
	after, err := slot.Get(DefaultKey)
	require.NoError(t, err)
	require.Equal(t, before, after)
}
