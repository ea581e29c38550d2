package service

import "fmt"

// Code is a file server result code.
type Code int

const (
	CodeSuccess Code = iota
	CodeClosed
	CodeErrInvalid
	CodeErrFatal
	CodeErrBadSD
	CodeErrWouldBlock
	CodeErrBufferSpace
	CodeErrSocket
	CodeErrBind
	CodeErrListen
	CodeErrAccept
	CodeErrRecv
	CodeErrSend
	CodeErrClose
	CodeErr404
	CodeErrFOpen
	CodeErrFRead
	CodeErrEpoll
)

var codeNames = map[Code]string{
	CodeSuccess:        "FS_SUCCESS",
	CodeClosed:         "FS_CLOSED",
	CodeErrInvalid:     "FS_ERR_INVALID",
	CodeErrFatal:       "FS_ERR_FATAL",
	CodeErrBadSD:       "FS_ERR_BADSD",
	CodeErrWouldBlock:  "FS_ERR_WOULDBLOCK",
	CodeErrBufferSpace: "FS_ERR_BUFSPACE",
	CodeErrSocket:      "FS_ERR_SOCKET",
	CodeErrBind:        "FS_ERR_BIND",
	CodeErrListen:      "FS_ERR_LISTEN",
	CodeErrAccept:      "FS_ERR_ACCEPT",
	CodeErrRecv:        "FS_ERR_RECV",
	CodeErrSend:        "FS_ERR_SEND",
	CodeErrClose:       "FS_ERR_CLOSE",
	CodeErr404:         "FS_ERR_404",
	CodeErrFOpen:       "FS_ERR_FOPEN",
	CodeErrFRead:       "FS_ERR_FREAD",
	CodeErrEpoll:       "FS_ERR_EPOLL",
}

// String returns the code's canonical name as it appears in logs.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("FS_CODE(%d)", int(c))
}

// OK reports whether c is CodeSuccess.
func (c Code) OK() bool { return c == CodeSuccess }
