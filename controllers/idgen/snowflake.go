package idgen

import (
	"fmt"
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}

// OrderNo formats a snowflake id as the human-facing work-order number.
func OrderNo() string {
	return fmt.Sprintf("WO-%d", GenerateID())
}
