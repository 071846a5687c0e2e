package confee_test

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/confee"
)

func Example() {
	conf := confee.MustNew(
		confee.Pair{Key: "log", Value: "stdout"},
		confee.Pair{Key: "dir", Value: "/var/www/html/"},
		confee.Pair{Key: "addr", Value: "127.0.0.1"},
		confee.Pair{Key: "port", Value: "8080"},
	)

	if err := conf.UpdateFrom(strings.NewReader("dir: ./example/\nport: 9090\n")); err != nil {
		fmt.Println("update failed:", err)
		return
	}

	port, err := confee.Get[uint16](conf, "port")
	if err != nil {
		fmt.Println("bad port:", err)
		return
	}

	fmt.Println(conf.MustGetRaw("log"))
	fmt.Println(conf.MustGetRaw("dir"))
	fmt.Println(port + 1)
	// Output:
	// stdout
	// ./example/
	// 9091
}

func ExampleConf_Scan() {
	type server struct {
		Addr  string   `conf:"addr"`
		Port  int      `conf:"port"`
		Hosts []string `conf:"hosts"`
	}

	conf := confee.MustNew(
		confee.Pair{Key: "addr", Value: "0.0.0.0"},
		confee.Pair{Key: "port", Value: "443"},
		confee.Pair{Key: "hosts", Value: "a.example, b.example"},
	)

	var s server
	if err := conf.Scan(&s); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s:%d %v\n", s.Addr, s.Port, s.Hosts)
	// Output: 0.0.0.0:443 [a.example b.example]
}

func ExampleConf_String() {
	conf := confee.MustNew(
		confee.Pair{Key: "port", Value: "8080"},
		confee.Pair{Key: "addr", Value: "127.0.0.1"},
	).WithDelim('=')

	fmt.Print(conf.String())
	// Output:
	// addr= 127.0.0.1
	// port= 8080
}
