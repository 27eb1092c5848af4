package bq

var ToRowErrors = toRowErrors
