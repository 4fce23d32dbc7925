package api

import (
	"errors"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOpErrors(t *testing.T) {
	Convey("Given an operation error", t, func() {
		err := NewKind("api.get_rank", ErrBadRequest)

		Convey("Then it names the operation and unwraps to its kind", func() {
			So(err.Error(), ShouldEqual, "api.get_rank: bad request")
			So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
		})

		Convey("And wrapping nil stays nil", func() {
			So(Wrap("api.get_rank", nil), ShouldBeNil)
		})
	})
}

func TestErrorClassification(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		So(getErrorType(http.StatusInternalServerError), ShouldEqual, "server_error")
		So(getErrorType(http.StatusTooManyRequests), ShouldEqual, "rate_limit")
		So(getErrorType(http.StatusNotFound), ShouldEqual, "not_found")
		So(getErrorType(http.StatusBadRequest), ShouldEqual, "client_error")
		So(getErrorSeverity(http.StatusBadGateway), ShouldEqual, "high")
		So(getErrorSeverity(http.StatusNotFound), ShouldEqual, "medium")
	})
}
