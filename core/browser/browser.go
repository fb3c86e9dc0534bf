package browser

import (
	"fmt"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

// for testing
var openURL = pkgbrowser.OpenURL

// Open tries to open url in the default web browser. It never fails: problems
// are logged at info level and reported through the return value.
func Open(url string, logg *zap.Logger) (opened bool) {
	defer func() {
		if r := recover(); r != nil {
			logg.Info("Please open the site in your browser", zap.String("url", url), zap.Error(fmt.Errorf("%v", r)))
			opened = false
		}
	}()

	if err := openURL(url); err != nil {
		logg.Info("Please open the site in your browser", zap.String("url", url), zap.Error(err))
		return false
	}
	logg.Info("Opening site in your default browser", zap.String("url", url))
	return true
}
