package gtfsfeed

const (
	EverydayServiceID         = "everyday"
	everydayCalendarStartDate = "20250101"
	everydayCalendarEndDate   = "21241231"
)

/*
 * calendar.txt
 */

func (f *Feed) SetCalendar(calendar *Calendar) {
	f.calendarByServiceID.set(calendar.ServiceID, calendar)
}

func (f *Feed) SetCalendars(calendars []*Calendar) {
	for _, calendar := range calendars {
		f.SetCalendar(calendar)
	}
}

// SetAndGetEverydayCalendar stores a calendar running every day from 2025 to 2124. Non-empty
// fields of overrides replace the defaults, including the "everyday" service_id.
func (f *Feed) SetAndGetEverydayCalendar(overrides Calendar) *Calendar {
	calendar := &Calendar{
		ServiceID: EverydayServiceID,
		Monday:    ServiceAvailable,
		Tuesday:   ServiceAvailable,
		Wednesday: ServiceAvailable,
		Thursday:  ServiceAvailable,
		Friday:    ServiceAvailable,
		Saturday:  ServiceAvailable,
		Sunday:    ServiceAvailable,
		StartDate: everydayCalendarStartDate,
		EndDate:   everydayCalendarEndDate,
	}
	overrideString(&calendar.ServiceID, overrides.ServiceID)
	overrideString(&calendar.Monday, overrides.Monday)
	overrideString(&calendar.Tuesday, overrides.Tuesday)
	overrideString(&calendar.Wednesday, overrides.Wednesday)
	overrideString(&calendar.Thursday, overrides.Thursday)
	overrideString(&calendar.Friday, overrides.Friday)
	overrideString(&calendar.Saturday, overrides.Saturday)
	overrideString(&calendar.Sunday, overrides.Sunday)
	overrideString(&calendar.StartDate, overrides.StartDate)
	overrideString(&calendar.EndDate, overrides.EndDate)

	f.SetCalendar(calendar)
	return calendar
}

func (f *Feed) SetEverydayCalendar(overrides Calendar) {
	f.SetAndGetEverydayCalendar(overrides)
}

func overrideString[S ~string](dst *S, value S) {
	if value != "" {
		*dst = value
	}
}

func (f *Feed) GetCalendar(serviceID string) *Calendar {
	calendar, _ := f.calendarByServiceID.get(serviceID)
	return calendar
}

func (f *Feed) NumberOfCalendars() int {
	return f.calendarByServiceID.len()
}

func (f *Feed) BuildArrayOfCalendars() []*Calendar {
	return f.calendarByServiceID.values()
}

// UpdateCalendarServiceIDWithoutUpdatingReferences renames a calendar's service. Trips and
// calendar dates keep referring to oldServiceID.
func (f *Feed) UpdateCalendarServiceIDWithoutUpdatingReferences(oldServiceID, newServiceID string) {
	calendar, ok := f.calendarByServiceID.delete(oldServiceID)
	if !ok {
		return
	}
	calendar.ServiceID = newServiceID
	f.SetCalendar(calendar)
}

func (f *Feed) DeleteCalendarWithoutDeletingReferences(serviceID string) {
	f.calendarByServiceID.delete(serviceID)
}

/*
 * calendar_dates.txt
 */

func calendarDateServiceID(cd *CalendarDate) string { return cd.ServiceID }
func calendarDateDate(cd *CalendarDate) string      { return cd.Date }

func (f *Feed) SetCalendarDate(calendarDate *CalendarDate) {
	f.calendarDateByDateByServiceID.set(calendarDate.ServiceID, calendarDate.Date, calendarDate)
}

func (f *Feed) SetCalendarDates(calendarDates []*CalendarDate) {
	for _, calendarDate := range calendarDates {
		f.SetCalendarDate(calendarDate)
	}
}

func (f *Feed) GetCalendarDate(serviceID, date string) *CalendarDate {
	calendarDate, _ := f.calendarDateByDateByServiceID.get(serviceID, date)
	return calendarDate
}

// NumberOfCalendarDates counts calendar dates across all services.
func (f *Feed) NumberOfCalendarDates() int {
	return f.calendarDateByDateByServiceID.len()
}

func (f *Feed) BuildArrayOfCalendarDates() []*CalendarDate {
	return f.calendarDateByDateByServiceID.values()
}

func (f *Feed) BuildArrayOfCalendarDatesOfServiceID(serviceID string) []*CalendarDate {
	return f.calendarDateByDateByServiceID.group(serviceID)
}

func (f *Feed) UpdateCalendarDatesServiceIDWithoutUpdatingReferences(oldServiceID, newServiceID string) {
	for _, calendarDate := range f.calendarDateByDateByServiceID.deleteGroup(oldServiceID) {
		calendarDate.ServiceID = newServiceID
		f.SetCalendarDate(calendarDate)
	}
}

func (f *Feed) UpdateCalendarDateDateWithoutUpdatingReferences(serviceID, oldDate, newDate string) {
	calendarDate, ok := f.calendarDateByDateByServiceID.delete(serviceID, oldDate)
	if !ok {
		return
	}
	calendarDate.Date = newDate
	f.SetCalendarDate(calendarDate)
}

func (f *Feed) DeleteCalendarDateWithoutDeletingReferences(serviceID, date string) {
	f.calendarDateByDateByServiceID.delete(serviceID, date)
}

func (f *Feed) DeleteCalendarDatesOfServiceIDWithoutDeletingReferences(serviceID string) {
	f.calendarDateByDateByServiceID.deleteGroup(serviceID)
}
