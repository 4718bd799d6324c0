package models

import "errors"

//--------------------------ERROR-CODES--------------------------

var ErrEmptyGraph = errors.New("link graph is empty")
var ErrPageNotFound = errors.New("page not found in the link graph")
var ErrDanglingLink = errors.New("link target is not part of the corpus")
var ErrSelfLoop = errors.New("page links to itself")

var ErrInvalidDamping = errors.New("damping factor must be inside the open interval (0,1)")
var ErrInvalidSampleCount = errors.New("sample count must be positive")
var ErrNotConverged = errors.New("pagerank iteration did not converge")
