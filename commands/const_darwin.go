package commands

const (
	_etc = "/usr/local/etc/com.github.ericpoe/ask-a-tech"
	_var = "/usr/local/var/com.github.ericpoe/ask-a-tech"

	DEFAULT_CONFIG  = _etc + "/ask-a-tech.yaml"
	DEFAULT_WORKDIR = _var
)
