package rand

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "rand")
