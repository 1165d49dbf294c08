package service

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contact-book/internal/config"
	"gitlab.com/dirk.krummacker/contact-book/internal/directory"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
	api "gitlab.com/dirk.krummacker/contact-book/pkg/model"
	"go.uber.org/zap"
)

// handlers serve the REST API on top of one directory.
type handlers struct {
	book    *directory.Directory
	now     func() time.Time
	horizon int
	logger  *zap.Logger
}

// SetupHttpRouter initializes the REST API router and registers all endpoints. Request logging
// is turned off if the configuration says so.
func SetupHttpRouter(book *directory.Directory, cfg config.Config, logger *zap.Logger) *gin.Engine {
	h := &handlers{book: book, now: time.Now, horizon: cfg.HorizonDays, logger: logger}
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.RequestLogging() {
		router.Use(requestLogger(logger))
	} else {
		logger.Info("Turning off HTTP request logging")
	}
	router.GET("/contacts", h.findContacts)
	router.POST("/contacts", h.createContact)
	router.GET("/contacts/:name", h.findContactByName)
	router.DELETE("/contacts/:name", h.deleteContactByName)
	router.POST("/contacts/:name/phones", h.addPhone)
	router.PUT("/contacts/:name/phones/:phone", h.editPhone)
	router.DELETE("/contacts/:name/phones/:phone", h.removePhone)
	router.PUT("/contacts/:name/birthday", h.setBirthday)
	router.GET("/birthdays", h.findUpcomingBirthdays)
	return router
}

// requestLogger writes one log entry per HTTP request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// abortWithError translates an error of the contact book into an HTTP status code and a message.
func abortWithError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	var argumentErr *model.ArgumentError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &argumentErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.As(err, &notFoundErr):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// toContact converts a record into its JSON document. The caller must hold the directory lock.
func toContact(record *model.Record) api.Contact {
	contact := api.Contact{Name: record.Name().Render()}
	for _, phone := range record.Phones() {
		contact.Phones = append(contact.Phones, phone.Render())
	}
	if birthday, set := record.Birthday(); set {
		rendered := birthday.Render()
		contact.Birthday = &rendered
	}
	return contact
}

// findContacts responds with the list of all contacts as JSON, in the order they were added.
//
// REST API call:
//
//	> curl "http://localhost:8080/contacts"
func (h *handlers) findContacts(c *gin.Context) {
	contacts := []api.Contact{}
	h.book.Range(func(record *model.Record) bool {
		contacts = append(contacts, toContact(record))
		return true
	})
	if len(contacts) == 0 {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// createContact stores the contact specified in the request's JSON. An existing contact with the
// same name is replaced. Nothing is stored if any phone or the birthday is invalid.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"name": "Hans", "phones": ["0815471100"], "birthday": "02.03.1969"}'
func (h *handlers) createContact(c *gin.Context) {
	var submitted api.Contact
	if err := c.ShouldBindJSON(&submitted); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	record, err := model.NewRecord(submitted.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	for _, phone := range submitted.Phones {
		if err := record.AddPhone(phone); err != nil {
			abortWithError(c, err)
			return
		}
	}
	if submitted.Birthday != nil {
		if err := record.SetBirthday(*submitted.Birthday); err != nil {
			abortWithError(c, err)
			return
		}
	}
	contact := toContact(record)
	h.book.Add(record)
	h.logger.Debug("Contact stored", zap.String("name", contact.Name))
	c.IndentedJSON(http.StatusCreated, contact)
}

// findContactByName responds with the contact whose name matches the name parameter of the
// request URL.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Hans
func (h *handlers) findContactByName(c *gin.Context) {
	var contact api.Contact
	err := h.book.View(c.Param("name"), func(record *model.Record) {
		contact = toContact(record)
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// deleteContactByName deletes the contact whose name matches the name parameter of the request
// URL.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Hans --request "DELETE"
func (h *handlers) deleteContactByName(c *gin.Context) {
	if h.book.Delete(c.Param("name")) {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "contact deleted"})
	} else {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	}
}

// update binds the request's JSON into body, applies fn to the contact named in the URL and
// responds with the new version of the contact.
func (h *handlers) update(c *gin.Context, status int, body any, fn func(record *model.Record) error) {
	if body != nil {
		if err := c.ShouldBindJSON(body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
			return
		}
	}
	var contact api.Contact
	err := h.book.Update(c.Param("name"), func(record *model.Record) error {
		if err := fn(record); err != nil {
			return err
		}
		contact = toContact(record)
		return nil
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.IndentedJSON(status, contact)
}

// addPhone appends the phone number in the request's JSON to the contact.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Hans/phones --request "POST" --include --header "Content-Type: application/json" --data '{"phone": "1234567890"}'
func (h *handlers) addPhone(c *gin.Context) {
	var request api.PhoneRequest
	h.update(c, http.StatusCreated, &request, func(record *model.Record) error {
		return record.AddPhone(request.Phone)
	})
}

// editPhone replaces the phone number in the request URL with the one in the request's JSON.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Hans/phones/1234567890 --request "PUT" --include --header "Content-Type: application/json" --data '{"phone": "5555555555"}'
func (h *handlers) editPhone(c *gin.Context) {
	var request api.PhoneRequest
	h.update(c, http.StatusOK, &request, func(record *model.Record) error {
		return record.EditPhone(c.Param("phone"), request.Phone)
	})
}

// removePhone removes the phone number in the request URL from the contact.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Hans/phones/1234567890 --request "DELETE"
func (h *handlers) removePhone(c *gin.Context) {
	phone := c.Param("phone")
	h.update(c, http.StatusOK, nil, func(record *model.Record) error {
		if !record.RemovePhone(phone) {
			return &model.NotFoundError{Kind: model.KindPhone, Key: phone}
		}
		return nil
	})
}

// setBirthday stores the birthday in the request's JSON, replacing any previous one.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/Hans/birthday --request "PUT" --include --header "Content-Type: application/json" --data '{"birthday": "13.04.1960"}'
func (h *handlers) setBirthday(c *gin.Context) {
	var request api.BirthdayRequest
	h.update(c, http.StatusOK, &request, func(record *model.Record) error {
		return record.SetBirthday(request.Birthday)
	})
}

// findUpcomingBirthdays responds with the contacts to congratulate within the next days.
//
// The URL parameter 'days' is the number of days to look ahead. It defaults to the configured
// horizon. The URL parameter 'today' replaces the current date and uses the DD.MM.YYYY format.
//
// REST API calls:
//
//	> curl "http://localhost:8080/birthdays"
//	> curl "http://localhost:8080/birthdays?days=30&today=10.06.2024"
func (h *handlers) findUpcomingBirthdays(c *gin.Context) {
	horizon := h.horizon
	if days := c.Query("days"); days != "" {
		parsed, err := strconv.Atoi(days)
		if err != nil || parsed < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid days parameter"})
			return
		}
		horizon = parsed
	}
	reference := h.now()
	if today := c.Query("today"); today != "" {
		parsed, err := time.Parse(model.BirthdayLayout, today)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid today parameter"})
			return
		}
		reference = parsed
	}
	result := []api.Congratulation{}
	for _, congratulation := range h.book.UpcomingBirthdays(reference, horizon) {
		result = append(result, api.Congratulation{Name: congratulation.Name, Date: congratulation.String()})
	}
	c.IndentedJSON(http.StatusOK, result)
}
