package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewledger/crewpay-backend/usecases"
)

type Configuration struct {
	Env            string
	Port           string
	DefaultTimeout time.Duration
}

func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases) *http.Server {
	addRoutes(router, uc)

	// slack on top of the handler timeout so our code times out first
	maxTimeout := conf.DefaultTimeout + 5*time.Second

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      router,
	}
}
