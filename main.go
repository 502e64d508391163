package main

import "gql_subgraphs/cmd"

func main() {
	cmd.Execute()
}
